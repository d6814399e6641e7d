package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm/mock"
)

func TestResearchAgent(t *testing.T) {
	t.Run("extracts buckets from response", func(t *testing.T) {
		client := mock.New().WithResponse(
			"Fact: EV sales doubled.\n" +
				"Source: IEA Global EV Outlook.\n" +
				"Insight: charging infrastructure lags.\n" +
				"We recommend focusing on fleets.")
		a := NewResearchAgent(client, nil)

		result, err := a.ResearchTopic(context.Background(), ResearchParams{
			Topic:         "electric vehicles",
			ResearchDepth: "comprehensive",
		})
		if err != nil {
			t.Fatalf("ResearchTopic() error = %v", err)
		}

		if result.Topic != "electric vehicles" {
			t.Errorf("topic = %q", result.Topic)
		}
		if len(result.KeyFacts) != 1 || len(result.Sources) != 1 {
			t.Errorf("key_facts=%v sources=%v", result.KeyFacts, result.Sources)
		}
		if len(result.Insights) != 1 || len(result.Recommendations) != 1 {
			t.Errorf("insights=%v recommendations=%v", result.Insights, result.Recommendations)
		}
		if result.RawText == "" {
			t.Error("raw text missing")
		}
	})

	t.Run("prompt carries parameters", func(t *testing.T) {
		client := mock.New()
		a := NewResearchAgent(client, nil)

		_, err := a.ResearchTopic(context.Background(), ResearchParams{
			Topic:          "go generics",
			ResearchDepth:  "basic",
			ContentType:    "blog_post",
			TargetAudience: "developers",
		})
		if err != nil {
			t.Fatalf("ResearchTopic() error = %v", err)
		}

		for _, want := range []string{`"go generics"`, "basic research", "blog_post", "developers"} {
			if !strings.Contains(client.LastPrompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, client.LastPrompt)
			}
		}
		if client.LastSystem != researchSystemPrompt {
			t.Error("system prompt not applied")
		}
	})

	t.Run("empty topic never calls llm", func(t *testing.T) {
		client := mock.New()
		a := NewResearchAgent(client, nil)

		_, err := a.ResearchTopic(context.Background(), ResearchParams{Topic: "  "})
		if !errors.Is(err, domain.ErrEmptyTopic) {
			t.Errorf("error = %v, want ErrEmptyTopic", err)
		}
		if client.CallCount != 0 {
			t.Errorf("llm called %d times, want 0", client.CallCount)
		}
	})

	t.Run("llm error wrapped", func(t *testing.T) {
		wantErr := errors.New("timeout")
		a := NewResearchAgent(mock.New().WithError(wantErr), nil)

		_, err := a.ResearchTopic(context.Background(), ResearchParams{Topic: "go"})
		if !errors.Is(err, wantErr) {
			t.Errorf("error = %v, want wrapped %v", err, wantErr)
		}
	})
}

func TestFactCheckContent(t *testing.T) {
	t.Run("extracts verification buckets", func(t *testing.T) {
		client := mock.New().WithResponse(
			"Accuracy: 9\n" +
				"The sales figure is verified.\n" +
				"Correction: the launch year is wrong.\n" +
				"The IEA report is a credible source.")
		a := NewResearchAgent(client, nil)

		result, err := a.FactCheckContent(context.Background(), FactCheckParams{
			Content: "EVs launched in 2010 and sales doubled.",
			Topic:   "electric vehicles",
		})
		if err != nil {
			t.Fatalf("FactCheckContent() error = %v", err)
		}

		if result.AccuracyScore == nil || *result.AccuracyScore != 9 {
			t.Errorf("accuracy_score = %v, want 9", result.AccuracyScore)
		}
		if len(result.VerifiedFacts) == 0 {
			t.Errorf("verified_facts = %v, want at least the verified line", result.VerifiedFacts)
		}
		if len(result.Corrections) != 1 {
			t.Errorf("corrections = %v, want 1", result.Corrections)
		}
		if len(result.SourcesVerified) != 1 {
			t.Errorf("sources_verified = %v, want 1", result.SourcesVerified)
		}

		for _, want := range []string{`about "electric vehicles"`, "EVs launched in 2010"} {
			if !strings.Contains(client.LastPrompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, client.LastPrompt)
			}
		}
	})

	t.Run("empty content rejected", func(t *testing.T) {
		client := mock.New()
		a := NewResearchAgent(client, nil)

		_, err := a.FactCheckContent(context.Background(), FactCheckParams{Content: " ", Topic: "go"})
		if !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("error = %v, want ErrEmptyContent", err)
		}
		if client.CallCount != 0 {
			t.Errorf("llm called %d times, want 0", client.CallCount)
		}
	})
}

func TestWriterAgent(t *testing.T) {
	t.Run("prompt carries specifications", func(t *testing.T) {
		client := mock.New().WithResponse("The draft.")
		a := NewWriterAgent(client, nil)

		draft, err := a.CreateDraft(context.Background(), DraftParams{
			Topic:                  "electric vehicles",
			ContentType:            "article",
			TargetAudience:         "general",
			WordCount:              800,
			Tone:                   "casual",
			Keywords:               []string{"EV", "battery"},
			AdditionalRequirements: "Key Facts: a, b",
		})
		if err != nil {
			t.Fatalf("CreateDraft() error = %v", err)
		}
		if draft != "The draft." {
			t.Errorf("draft = %q", draft)
		}

		for _, want := range []string{
			`Create a article about "electric vehicles"`,
			"Approximately 800 words",
			"- Tone: casual",
			"Keywords to include naturally: EV, battery",
			"- Additional Requirements: Key Facts: a, b",
		} {
			if !strings.Contains(client.LastPrompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, client.LastPrompt)
			}
		}
	})

	t.Run("optional sections omitted", func(t *testing.T) {
		client := mock.New().WithResponse("text")
		a := NewWriterAgent(client, nil)

		if _, err := a.CreateDraft(context.Background(), DraftParams{Topic: "go"}); err != nil {
			t.Fatalf("CreateDraft() error = %v", err)
		}
		if strings.Contains(client.LastPrompt, "Keywords to include") {
			t.Error("keywords section present without keywords")
		}
		if strings.Contains(client.LastPrompt, "Additional Requirements") {
			t.Error("requirements section present without requirements")
		}
	})

	t.Run("output trimmed", func(t *testing.T) {
		a := NewWriterAgent(mock.New().WithResponse("\n  padded draft  \n"), nil)
		draft, err := a.CreateDraft(context.Background(), DraftParams{Topic: "go"})
		if err != nil {
			t.Fatalf("CreateDraft() error = %v", err)
		}
		if draft != "padded draft" {
			t.Errorf("draft = %q, want trimmed", draft)
		}
	})
}

func TestEditorAgent(t *testing.T) {
	t.Run("review with score", func(t *testing.T) {
		client := mock.New().WithResponse(
			"Overall Score: 8\n" +
				"Consider tightening the intro.\n" +
				"The structure is excellent.")
		a := NewEditorAgent(client, nil)

		result, err := a.ReviewContent(context.Background(), ReviewParams{
			Content:     "Some draft text.",
			ContentType: "article",
		})
		if err != nil {
			t.Fatalf("ReviewContent() error = %v", err)
		}

		if result.OverallScore == nil || *result.OverallScore != 8 {
			t.Errorf("overall_score = %v, want 8", result.OverallScore)
		}
		if len(result.Suggestions) != 1 {
			t.Errorf("suggestions = %v", result.Suggestions)
		}
		if len(result.PositiveAspects) != 1 {
			t.Errorf("positive_aspects = %v", result.PositiveAspects)
		}
	})

	t.Run("default focus areas", func(t *testing.T) {
		client := mock.New()
		a := NewEditorAgent(client, nil)

		if _, err := a.ReviewContent(context.Background(), ReviewParams{Content: "text"}); err != nil {
			t.Fatalf("ReviewContent() error = %v", err)
		}
		if !strings.Contains(client.LastPrompt, "grammar, style, clarity, structure, engagement") {
			t.Errorf("default focus missing:\n%s", client.LastPrompt)
		}
	})

	t.Run("empty content rejected", func(t *testing.T) {
		client := mock.New()
		a := NewEditorAgent(client, nil)

		_, err := a.ReviewContent(context.Background(), ReviewParams{Content: "  "})
		if !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("error = %v, want ErrEmptyContent", err)
		}
		if client.CallCount != 0 {
			t.Errorf("llm called %d times, want 0", client.CallCount)
		}
	})
}

func TestImproveContent(t *testing.T) {
	t.Run("returns rewritten text", func(t *testing.T) {
		client := mock.New().WithResponse("A much better draft.")
		a := NewEditorAgent(client, nil)

		improved, err := a.ImproveContent(context.Background(), ImproveParams{
			Content:          "A rough draft.",
			ImprovementAreas: []string{"clarity", "impact"},
		})
		if err != nil {
			t.Fatalf("ImproveContent() error = %v", err)
		}
		if improved != "A much better draft." {
			t.Errorf("improved = %q", improved)
		}
		if !strings.Contains(client.LastPrompt, "focusing on: clarity, impact") {
			t.Errorf("prompt missing areas:\n%s", client.LastPrompt)
		}
		if !strings.Contains(client.LastPrompt, "A rough draft.") {
			t.Errorf("prompt missing original content:\n%s", client.LastPrompt)
		}
	})

	t.Run("default improvement areas", func(t *testing.T) {
		client := mock.New()
		a := NewEditorAgent(client, nil)

		if _, err := a.ImproveContent(context.Background(), ImproveParams{Content: "text"}); err != nil {
			t.Fatalf("ImproveContent() error = %v", err)
		}
		if !strings.Contains(client.LastPrompt, "clarity, engagement, flow, impact") {
			t.Errorf("default areas missing:\n%s", client.LastPrompt)
		}
	})

	t.Run("empty content rejected", func(t *testing.T) {
		a := NewEditorAgent(mock.New(), nil)
		if _, err := a.ImproveContent(context.Background(), ImproveParams{}); !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("error = %v, want ErrEmptyContent", err)
		}
	})
}

func TestSEOAgent(t *testing.T) {
	t.Run("keyword suggestions", func(t *testing.T) {
		client := mock.New().WithResponse(
			"Primary keywords: go, golang\n" +
				"Long-tail keywords: go concurrency patterns, go error handling\n" +
				"Related: programming")
		a := NewSEOAgent(client, nil)

		plan, err := a.SuggestKeywords(context.Background(), KeywordParams{Topic: "go"})
		if err != nil {
			t.Fatalf("SuggestKeywords() error = %v", err)
		}

		if got := strings.Join(plan.PrimaryKeywords, "|"); got != "go|golang" {
			t.Errorf("primary = %q", got)
		}
		if got := strings.Join(plan.LongTailKeywords, "|"); got != "go concurrency patterns|go error handling" {
			t.Errorf("long_tail = %q", got)
		}
	})

	t.Run("content optimization", func(t *testing.T) {
		client := mock.New().WithResponse(
			"SEO Score: 7\n" +
				"Optimized Content:\n" +
				"Go makes concurrency simple.\n" +
				"Goroutines scale cheaply.\n" +
				"\n" +
				"We recommend adding internal links.")
		a := NewSEOAgent(client, nil)

		result, err := a.OptimizeContent(context.Background(), OptimizeParams{
			Content:        "Go has goroutines.",
			TargetKeywords: []string{"go", "concurrency"},
			ContentType:    "article",
		})
		if err != nil {
			t.Fatalf("OptimizeContent() error = %v", err)
		}

		want := "Go makes concurrency simple.\nGoroutines scale cheaply.\nWe recommend adding internal links."
		if result.OptimizedContent != want {
			t.Errorf("optimized_content = %q, want %q", result.OptimizedContent, want)
		}
		if result.SEOScore == nil || *result.SEOScore != 7 {
			t.Errorf("seo_score = %v, want 7", result.SEOScore)
		}
		if len(result.Recommendations) == 0 {
			t.Errorf("recommendations = %v, want the recommend line", result.Recommendations)
		}
		if got := strings.Join(result.TargetKeywords, "|"); got != "go|concurrency" {
			t.Errorf("target_keywords = %q", got)
		}
		if !strings.Contains(client.LastPrompt, "target keywords: go, concurrency") {
			t.Errorf("prompt missing keywords:\n%s", client.LastPrompt)
		}
	})

	t.Run("optimization without marker keeps whole text", func(t *testing.T) {
		client := mock.New().WithResponse("Just analysis, no rewrite section.")
		a := NewSEOAgent(client, nil)

		result, err := a.OptimizeContent(context.Background(), OptimizeParams{
			Content:        "text",
			TargetKeywords: []string{"go"},
		})
		if err != nil {
			t.Fatalf("OptimizeContent() error = %v", err)
		}
		if result.OptimizedContent != "Just analysis, no rewrite section." {
			t.Errorf("optimized_content = %q, want full text fallback", result.OptimizedContent)
		}
	})

	t.Run("meta tags", func(t *testing.T) {
		client := mock.New().WithResponse(
			"Meta Title: Go Concurrency Explained\n" +
				"Meta Description: Learn how goroutines and channels make concurrent Go simple.")
		a := NewSEOAgent(client, nil)

		tags, err := a.GenerateMetaTags(context.Background(), MetaTagParams{
			Content:        "Go has goroutines.",
			TargetKeywords: []string{"go", "concurrency"},
		})
		if err != nil {
			t.Fatalf("GenerateMetaTags() error = %v", err)
		}

		if tags.MetaTitle != "Go Concurrency Explained" {
			t.Errorf("meta_title = %q", tags.MetaTitle)
		}
		if tags.MetaDescription != "Learn how goroutines and channels make concurrent Go simple." {
			t.Errorf("meta_description = %q", tags.MetaDescription)
		}
	})

	t.Run("empty content rejected", func(t *testing.T) {
		a := NewSEOAgent(mock.New(), nil)
		if _, err := a.OptimizeContent(context.Background(), OptimizeParams{}); !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("OptimizeContent error = %v, want ErrEmptyContent", err)
		}
		if _, err := a.GenerateMetaTags(context.Background(), MetaTagParams{}); !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("GenerateMetaTags error = %v, want ErrEmptyContent", err)
		}
	})
}

func TestCreativeAgent(t *testing.T) {
	t.Run("ideas from bullets", func(t *testing.T) {
		client := mock.New().WithResponse("Ideas:\n- first\n- second\n1. third")
		a := NewCreativeAgent(client, nil)

		set, err := a.GenerateIdeas(context.Background(), IdeaParams{Topic: "go"})
		if err != nil {
			t.Fatalf("GenerateIdeas() error = %v", err)
		}
		if len(set.Ideas) != 3 {
			t.Errorf("ideas = %v, want 3", set.Ideas)
		}
		// count and creativity defaults land in the prompt
		if !strings.Contains(client.LastPrompt, "Generate 10 high-creativity") {
			t.Errorf("prompt missing defaults:\n%s", client.LastPrompt)
		}
	})

	t.Run("headlines honor explicit count", func(t *testing.T) {
		client := mock.New().WithResponse("- headline one\n- headline two")
		a := NewCreativeAgent(client, nil)

		set, err := a.BrainstormHeadlines(context.Background(), HeadlineParams{
			Topic:         "go",
			HeadlineCount: 5,
			HeadlineStyle: "question-based",
		})
		if err != nil {
			t.Fatalf("BrainstormHeadlines() error = %v", err)
		}
		if len(set.Headlines) != 2 {
			t.Errorf("headlines = %v", set.Headlines)
		}
		if !strings.Contains(client.LastPrompt, "Generate 5 question-based headlines") {
			t.Errorf("prompt missing params:\n%s", client.LastPrompt)
		}
	})
}
