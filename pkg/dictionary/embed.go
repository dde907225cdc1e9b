package dictionary

import (
	"bufio"
	"embed"
	"log"
	"strings"
)

//go:embed data/words.txt
var embeddedFS embed.FS

// loadEmbeddedWords loads the embedded word list into a lookup set
func loadEmbeddedWords() map[string]bool {
	words := make(map[string]bool)

	// Open the embedded words.txt file
	file, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		log.Printf("[Dictionary] Error opening embedded word list: %v", err)
		return words
	}
	defer file.Close()

	// Read each line and add the word to the set
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words[strings.ToLower(word)] = true
		}
	}

	// Check for scanner errors
	if err := scanner.Err(); err != nil {
		log.Printf("[Dictionary] Error reading embedded word list: %v", err)
	}

	return words
}
