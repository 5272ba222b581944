// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai provides the content analysis abstraction for viralscope.
//
// The core pipeline depends on the Analyzer interface rather than a concrete
// inference provider. Two implementation sub-packages exist:
//
//   - ai/openrouter: production implementation against an OpenAI-compatible
//     chat API, responsible for prompt construction and for extracting the
//     JSON analysis object from a free-text model reply
//   - ai/mock: test doubles for unit testing without external dependencies
//
// The package also ships FallbackAnalyzer, a randomized bounded-range
// analyzer used whenever the real capability is unreachable, unauthorized,
// or returns unusable output. The pipeline composes the two so that analysis
// is total: a candidate always receives an Analysis, and the output schema
// never distinguishes real from synthesized estimates (only logs do).
package ai
