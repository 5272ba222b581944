// Package openrouter implements ai.Analyzer against an OpenAI-compatible
// chat completion API, OpenRouter by default.
//
// The analyzer builds a natural-language prompt from a candidate's title,
// description, and post URL, asks the model for a JSON analysis object, and
// extracts that object from the free-text reply. It never degrades silently:
// missing credentials, transport failures, empty replies, and unparseable
// output are all returned as errors so the pipeline can substitute a
// fallback analysis.
package openrouter
