package ai

// Analysis is an AI-derived estimate accompanying a candidate.
// JSON field names match the structure the model is asked to return.
type Analysis struct {
	// EstimatedLikes through EstimatedFollowers are realistic estimates
	// based on content quality, used when real metrics are absent.
	EstimatedLikes     int `json:"estimated_likes"`
	EstimatedComments  int `json:"estimated_comments"`
	EstimatedShares    int `json:"estimated_shares"`
	EstimatedViews     int `json:"estimated_views"`
	EstimatedFollowers int `json:"estimated_followers"`

	// EngagementScore is the model's 0-100 viral potential estimate.
	EngagementScore int `json:"engagement_score"`

	// ContentQuality is a 0-100 content quality estimate.
	ContentQuality int `json:"content_quality"`

	// ViralFactors names what makes the content viral.
	ViralFactors []string `json:"viral_factors"`

	// SuggestedTitle is an improved title, if the original needs one.
	SuggestedTitle string `json:"suggested_title"`

	// Description is an enhanced description.
	Description string `json:"description"`

	// Author is the extracted or estimated author name.
	Author string `json:"author"`

	// Hashtags are relevant hashtag suggestions.
	Hashtags []string `json:"hashtags"`
}
