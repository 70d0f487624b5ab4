package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// MaxTextLength bounds the extracted text to cap downstream LLM cost.
const MaxTextLength = 5000

var (
	spaceRe   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRe = regexp.MustCompile(`\n+`)
)

// Extract converts raw PDF bytes into plain text, whitespace-normalized and
// truncated to MaxTextLength. Corrupt, encrypted or empty documents fail.
func Extract(data []byte) (text string, err error) {
	// the pdf library panics on some structurally broken files instead of
	// returning an error
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}

	text = normalizeWhitespace(buf.String())
	if text == "" {
		return "", errors.New("no extractable text")
	}
	if runes := []rune(text); len(runes) > MaxTextLength {
		text = string(runes[:MaxTextLength])
	}
	return text, nil
}

func normalizeWhitespace(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = newlineRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
