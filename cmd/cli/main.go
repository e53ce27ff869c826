package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

const defaultServerURL = "http://localhost:3000"

func main() {
	var serverURL string
	var output string
	var format string
	flag.StringVar(&serverURL, "server", defaultServerURL, "Server URL")
	flag.StringVar(&serverURL, "s", defaultServerURL, "Server URL (short)")
	flag.StringVar(&output, "o", "", "Output file (default: invoice.<format>)")
	flag.StringVar(&format, "format", "pdf", "Output format: pdf or png")
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}

	dataPath := flag.Arg(0)
	logoPath := flag.Arg(1)

	if output == "" {
		output = "invoice." + format
	}

	if err := generate(serverURL, dataPath, logoPath, format, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", output)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Invoice Engine CLI

Usage:
  invoice-cli [flags] <data.json> <logo.png|jpg>

Flags:
  -s, -server <url>    Server URL (default: %s)
  -o <file>            Output file (default: invoice.<format>)
  -format <pdf|png>    Output format (default: pdf)

Examples:
  invoice-cli ./invoice.json ./logo.png
  invoice-cli -format png -o preview.png ./invoice.json ./logo.png
`, defaultServerURL)
}

// generate posts the invoice form to the server and writes the returned
// document to output.
func generate(serverURL, dataPath, logoPath, format, output string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read invoice data: %w", err)
	}

	logo, err := os.Open(logoPath)
	if err != nil {
		return fmt.Errorf("failed to open logo: %w", err)
	}
	defer logo.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("logo", filepath.Base(logoPath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, logo); err != nil {
		return err
	}
	if err := w.WriteField("data", string(data)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/generate-invoice?format=%s", serverURL, format)
	resp, err := http.Post(url, w.FormDataContentType(), &body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// serverError decodes the {error, details} response shape.
func serverError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error   string          `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Error == "" {
		return fmt.Errorf("server returned HTTP %d", resp.StatusCode)
	}

	var details []string
	if err := json.Unmarshal(apiErr.Details, &details); err == nil && len(details) > 0 {
		msg := apiErr.Error
		for _, d := range details {
			msg += "\n  - " + d
		}
		return fmt.Errorf("%s", msg)
	}

	var detail string
	if err := json.Unmarshal(apiErr.Details, &detail); err == nil && detail != "" {
		return fmt.Errorf("%s: %s", apiErr.Error, detail)
	}

	return fmt.Errorf("%s", apiErr.Error)
}
