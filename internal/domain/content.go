package domain

import "strings"

type Status string

const (
	StatusCompleted          Status = "completed"
	StatusReviewed           Status = "reviewed"
	StatusImproved           Status = "improved"
	StatusResearched         Status = "researched"
	StatusFactChecked        Status = "fact_checked"
	StatusKeywordsGenerated  Status = "keywords_generated"
	StatusOptimized          Status = "optimized"
	StatusMetaTagsGenerated  Status = "meta_tags_generated"
	StatusIdeasGenerated     Status = "ideas_generated"
	StatusHeadlinesGenerated Status = "headlines_generated"
)

// ContentRequest is the immutable input to the content-creation pipeline.
// Tone, content type and research depth are free-text hints passed verbatim
// into prompts; nothing validates them against an enum.
type ContentRequest struct {
	Topic          string   `json:"topic"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
	WordCount      int      `json:"word_count"`
	Tone           string   `json:"tone"`
	Keywords       []string `json:"keywords,omitempty"`
	ResearchDepth  string   `json:"research_depth"`
}

func (r *ContentRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}

// Sanitize trims the topic and fills blank fields from defaults.
func (r *ContentRequest) Sanitize(d Defaults) {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.ContentType == "" {
		r.ContentType = d.ContentType
	}
	if r.TargetAudience == "" {
		r.TargetAudience = d.TargetAudience
	}
	if r.WordCount <= 0 {
		r.WordCount = d.WordCount
	}
	if r.Tone == "" {
		r.Tone = d.Tone
	}
	if r.ResearchDepth == "" {
		r.ResearchDepth = d.ResearchDepth
	}
}

// Defaults mirror config.ContentDefaults without importing it here.
type Defaults struct {
	ContentType    string
	TargetAudience string
	WordCount      int
	Tone           string
	ResearchDepth  string
}

// ResearchResult is the research step's output. The slices are best-effort
// extractions from free text; any of them may be empty.
type ResearchResult struct {
	Topic           string   `json:"topic"`
	RawText         string   `json:"raw_text"`
	KeyFacts        []string `json:"key_facts"`
	Sources         []string `json:"sources"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// DraftResult is the writer step's output. WordCountActual is the literal
// whitespace-token count of DraftContent, not the requested target.
type DraftResult struct {
	DraftContent         string   `json:"draft_content"`
	ResearchIncorporated bool     `json:"research_incorporated"`
	WordCountActual      int      `json:"word_count_actual"`
	KeywordsUsed         []string `json:"keywords_used"`
}

// ContentRecord is the final assembled output of one pipeline run. It is
// returned to the caller and discarded; nothing persists it.
type ContentRecord struct {
	Topic             string         `json:"topic"`
	ContentType       string         `json:"content_type"`
	TargetAudience    string         `json:"target_audience"`
	WordCount         int            `json:"word_count"`
	Tone              string         `json:"tone"`
	Keywords          []string       `json:"keywords"`
	ResearchData      ResearchResult `json:"research_data"`
	Content           DraftResult    `json:"content"`
	CreationTimestamp string         `json:"creation_timestamp"`
	Status            Status         `json:"status"`
}

// ReviewResult is the editor agent's structured review of a draft.
type ReviewResult struct {
	ReviewText      string   `json:"review_text"`
	OverallScore    *int     `json:"overall_score"`
	Suggestions     []string `json:"suggestions"`
	PositiveAspects []string `json:"positive_aspects"`
}

// FactCheckResult is the research agent's accuracy assessment of a draft.
type FactCheckResult struct {
	RawText         string   `json:"fact_check_results"`
	VerifiedFacts   []string `json:"verified_facts"`
	Corrections     []string `json:"corrections_needed"`
	AccuracyScore   *int     `json:"accuracy_score"`
	SourcesVerified []string `json:"sources_verified"`
}

// SEOResult is the SEO agent's optimization pass over existing content.
type SEOResult struct {
	OptimizedContent string   `json:"optimized_content"`
	RawText          string   `json:"seo_analysis"`
	TargetKeywords   []string `json:"target_keywords"`
	SEOScore         *int     `json:"seo_score"`
	Recommendations  []string `json:"recommendations"`
}

// MetaTags hold a generated meta title and description pair.
type MetaTags struct {
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// KeywordPlan groups the SEO agent's keyword suggestions.
type KeywordPlan struct {
	RawText          string   `json:"raw_text"`
	PrimaryKeywords  []string `json:"primary_keywords"`
	LongTailKeywords []string `json:"long_tail_keywords"`
}

// IdeaSet holds creative content ideas for a topic.
type IdeaSet struct {
	RawText string   `json:"raw_text"`
	Ideas   []string `json:"ideas"`
}

// HeadlineSet holds brainstormed headlines for a topic.
type HeadlineSet struct {
	RawText   string   `json:"raw_text"`
	Headlines []string `json:"headlines"`
}
