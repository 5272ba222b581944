package openrouter

import (
	"fmt"

	"github.com/poiesic/viralscope/core"
)

// analysisPromptTemplate asks for a JSON object whose field names match
// ai.Analysis. The model is told to keep estimates realistic; replies still
// arrive as free text, so the caller extracts the object itself.
const analysisPromptTemplate = `Analyze this %s post for viral potential:

Title: %s
Description: %s
Post URL: %s

Please provide a JSON response with:
- estimated_likes: number (realistic estimate based on content quality)
- estimated_comments: number
- estimated_shares: number
- estimated_views: number
- estimated_followers: number (for the author)
- engagement_score: number (0-100, how viral this content is)
- viral_factors: array of strings (what makes this content viral)
- suggested_title: string (if title needs improvement)
- description: string (enhanced description)
- author: string (extracted or estimated author name)
- hashtags: array of relevant hashtags
- content_quality: number (0-100)

Focus on realistic metrics based on actual social media engagement patterns.`

func buildAnalysisPrompt(candidate *core.Candidate) string {
	return fmt.Sprintf(analysisPromptTemplate,
		candidate.Platform, candidate.Title, candidate.Description, candidate.PostURL)
}
