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

package tokenize

import (
	"strings"

	"github.com/poiesic/synonyms/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const sentenceBreak = "."

// normalizer maps sentence terminators to '.' and word separators to spaces.
// "--" and "-" both collapse to whitespace.
var normalizer = strings.NewReplacer(
	"!", sentenceBreak,
	"?", sentenceBreak,
	"--", " ",
	",", " ",
	"-", " ",
	":", " ",
	";", " ",
)

// Sentences splits text into sentences of lowercased words.
// Sentences without any word are dropped.
func Sentences(text string) []core.Sentence {
	// Casers keep state and must not be shared between goroutines
	lower := cases.Lower(language.Und).String(text)
	normalized := normalizer.Replace(lower)

	var sentences []core.Sentence
	for _, raw := range strings.Split(normalized, sentenceBreak) {
		words := strings.Fields(raw)
		if len(words) == 0 {
			continue
		}
		sentences = append(sentences, core.Sentence(words))
	}
	return sentences
}
