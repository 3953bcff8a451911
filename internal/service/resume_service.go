package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/pkg/logger"
)

// resumeTextLimit caps how much extracted text is sent to the generation
// service.
const resumeTextLimit = 4000

// ResumeService turns an uploaded PDF into a structured ParsedResume.
type ResumeService struct {
	Generator TextGenerator
}

func NewResumeService(gen TextGenerator) *ResumeService {
	return &ResumeService{Generator: gen}
}

// Parse extracts text from the PDF and structures it. An unreadable or
// text-free PDF yields an empty result with an explanatory summary, never
// an error. Structuring prefers the generation service and degrades to
// keyword scanning.
func (s *ResumeService) Parse(ctx context.Context, pdfBytes []byte) model.ParsedResume {
	rawText := extractPDFText(pdfBytes)
	if strings.TrimSpace(rawText) == "" {
		return model.ParsedResume{
			Skills:       []string{},
			Achievements: []string{},
			Experience:   []string{},
			Publications: []string{},
			Summary:      "Could not extract text from this PDF.",
		}
	}

	rawText = truncateRunes(rawText, resumeTextLimit)

	prompt := fmt.Sprintf(`You are a resume parser. Extract structured information from the resume text below.

Return ONLY a valid JSON object with these keys:
- "skills": list of technical skills mentioned (strings, max 20)
- "achievements": list of notable achievements or projects (strings, max 10)
- "experience": list of work/internship experiences (strings, max 8)
- "publications": list of publications or papers if any (strings)
- "summary": a 2-sentence professional summary

Resume Text:
---
%s
---

JSON only, no markdown:`, rawText)

	parsed, _ := GenerateJSON(ctx, s.Generator, "resume_parse", prompt, func() model.ParsedResume {
		return keywordExtract(rawText)
	})
	return parsed
}

func extractPDFText(pdfBytes []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		logger.L().Warn("failed to open PDF", zap.Error(err))
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// resumeKeywords is the skill vocabulary scanned when structuring has to
// happen without the generation service.
var resumeKeywords = []string{
	"Python", "Java", "JavaScript", "React", "Node.js", "SQL", "MongoDB",
	"C++", "C#", "TypeScript", "Django", "Flask", "Docker", "AWS", "Git",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Linux",
	"HTML", "CSS", "Express", "Spring", "Kubernetes", "Redis",
}

// truncateRunes cuts s to at most limit runes, never splitting a
// multi-byte character.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func keywordExtract(rawText string) model.ParsedResume {
	lower := strings.ToLower(rawText)
	found := []string{}
	for _, kw := range resumeKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}

	summary := truncateRunes(rawText, 300)
	summary = strings.TrimSpace(strings.ReplaceAll(summary, "\n", " "))

	return model.ParsedResume{
		Skills:       found,
		Achievements: []string{},
		Experience:   []string{},
		Publications: []string{},
		Summary:      summary,
	}
}
