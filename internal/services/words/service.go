package words

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/dependencies/random"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

// Service supplies the drawing vocabulary: a uniformly-random word per round
// and the masked hint shown to guessers.
type Service struct {
	random random.Random
	logger *slog.Logger

	mu    sync.RWMutex
	words []string
}

// New creates a word service preloaded with the built-in vocabulary
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger,
		words:  defaultWords(),
	}
}

// LoadFromFile replaces the vocabulary from a file (one word per line).
// Blank lines and surrounding whitespace are ignored.
func (s *Service) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(words) == 0 {
		return model.ErrNoWordsLoaded
	}

	s.mu.Lock()
	s.words = words
	s.mu.Unlock()

	s.logger.Info("word list loaded", slog.String("path", path), slog.Int("words", len(words)))
	return nil
}

// LoadWords replaces the vocabulary directly (useful for testing)
func (s *Service) LoadWords(words []string) error {
	if len(words) == 0 {
		return model.ErrNoWordsLoaded
	}
	s.mu.Lock()
	s.words = append([]string(nil), words...)
	s.mu.Unlock()
	return nil
}

// Random picks a word uniformly at random from the vocabulary
func (s *Service) Random() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.words) == 0 {
		return ""
	}
	return s.words[s.random.Intn(len(s.words))]
}

// Count returns the vocabulary size
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Hint derives the masked hint for a word: every letter becomes an
// underscore, word boundaries are preserved, and no letter is revealed.
// The hint always has the same character-count shape as the word.
func Hint(word string) string {
	var b strings.Builder
	for _, r := range word {
		if r == ' ' {
			b.WriteRune(' ')
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromFile(path string) error
	LoadWords(words []string) error
	Random() string
	Count() int
}

var _ ServiceInterface = (*Service)(nil)
