package translator

import "fmt"

// Prompt is the instruction sent to the provider for one translation.
func Prompt(text, language string) string {
	return fmt.Sprintf("Translate the following text into %s: %s", language, text)
}
