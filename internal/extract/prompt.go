package extract

import "fmt"

// buildPrompt constructs the extraction prompt for one batch of text lines.
// The model is instructed to answer with bare two-column CSV so the response
// can be parsed without stripping prose.
func buildPrompt(sourceLanguage, targetLanguage, batch string) string {
	return fmt.Sprintf(`Please extract the vocabulary and phrases from the following text lines in %[1]s.
Every line is one sentence or phrase.

Write them in a two column CSV:
one column for the term or phrase in %[1]s in its dictionary form,
and one column for the translation in %[2]s.

Do not forget to escape the commas with double-quotes as the output is a CSV.

Make sure that the term really appears in the text lines!

Do not output the CSV header!

Output only valid CSV, no text before or after!

Here are the text lines:
%[3]s`, sourceLanguage, targetLanguage, batch)
}
