package config

// DefaultPrompt is the built-in enrichment template for general courses.
// Templates are stored verbatim in the course config at creation time, so
// later edits here do not affect existing courses.
func DefaultPrompt() string {
	return `You are an expert tutor helping a student learn about {course}.

The student has given you a concept/term to learn: "{phrase}"

Current level/topic: {level}
{context_section}
{grammar_section}

Please provide:
1. A clear, concise explanation of this concept
2. A practical example showing how it's used
3. Any important details or nuances to remember

Format your response as JSON with these fields:
{
  "term": "the term/concept (cleaned up if needed)",
  "explanation": "clear explanation",
  "example": "practical example",
  "example_explanation": "what the example demonstrates",
  "notes": "additional important details"
}`
}

// LanguagePrompt is the built-in enrichment template for language-learning
// courses.
func LanguagePrompt() string {
	return `You are an expert language teacher for {course}.

The student (at level: {level}) has given you a word/phrase to learn: "{phrase}"
{context_section}
{grammar_section}

Please provide:
1. The word/phrase in the target language (if not already)
2. Pronunciation guide (if applicable, e.g., pinyin for Chinese, IPA for complex words)
3. English translation
4. An example sentence in the target language
5. Translation of the example sentence
6. Grammar notes or usage tips

Format your response as JSON with these fields:
{
  "term": "word/phrase in target language",
  "pronunciation": "pronunciation guide (if applicable)",
  "translation": "English translation",
  "example": "example sentence in target language",
  "example_translation": "example translation",
  "notes": "grammar notes and usage tips"
}`
}
