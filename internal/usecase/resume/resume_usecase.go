package resume

import (
	"bytes"
	"fmt"

	"github.com/dslipak/pdf"
)

// MaxExtractChars caps the amount of text returned from an uploaded resume.
const MaxExtractChars = 10000

type ResumeUseCase struct{}

func NewResumeUseCase() *ResumeUseCase {
	return &ResumeUseCase{}
}

// ExtractText decodes an in-memory PDF and returns its plain text, truncated
// to MaxExtractChars characters. No structural analysis is done.
func (uc *ResumeUseCase) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to decode pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read extracted text: %w", err)
	}

	return Truncate(buf.String(), MaxExtractChars), nil
}

// Truncate cuts s to at most limit characters, never splitting a multi-byte
// character.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
