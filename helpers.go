package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// retry retries a function up to `attempts` times with linear backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonASCIIRuns   = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// CleanText collapses whitespace runs to single spaces, replaces runs of
// non-ASCII characters with a single space, then trims.
func CleanText(text string) string {
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = nonASCIIRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// --- Object storage ---

func DownloadFromR2(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

func UploadToR2(ctx context.Context, client *s3.Client, bucket, key, contentType string, data []byte) error {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// --- Text extraction ---

// ExtractResumeText converts an uploaded document into cleaned plain text.
func ExtractResumeText(mime string, data []byte) (string, error) {
	switch mime {
	case "text/plain":
		return CleanText(string(data)), nil

	case "application/pdf":
		text, err := extractPDFText(bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		return CleanText(text), nil

	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		text, err := extractDocxText(bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		return CleanText(text), nil

	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

func extractPDFText(reader io.ReaderAt) (string, error) {
	pdfReader, err := pdf.NewReader(reader, lenReader(reader))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(reader io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	_, err := io.Copy(buf, reader)
	if err != nil {
		return "", err
	}
	r := bytes.NewReader(buf.Bytes())

	doc, err := docx.ReadDocxFromMemory(r, int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// Utility: get reader length for PDF
func lenReader(r io.ReaderAt) int64 {
	switch v := r.(type) {
	case *bytes.Reader:
		return int64(v.Len())
	default:
		return 0
	}
}
