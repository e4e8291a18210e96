package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/khalid-nowaf/treeindex/pkg/trie"
)

// TrieCmd builds a trie of words (one per line) and runs queries against it.
type TrieCmd struct {
	Files      []string `arg:"" type:"existingfile" help:"Input files with one word per line"`
	Contains   []string `help:"Check if a word was inserted" sep:"none"`
	Prefix     []string `help:"Check if a word is a prefix of an inserted word" sep:"none"`
	Trace      []string `help:"Print the child positions along a word's path" sep:"none"`
	Complete   []string `help:"List inserted words starting with a prefix" sep:"none"`
	Limit      int      `help:"Maximum number of completions per prefix (0 for all)" default:"10"`
	IgnoreCase bool     `help:"Lower-case words and queries"`
}

// Run executes the trie command.
func (cmd *TrieCmd) Run(ctx *Context) error {
	stats := &Stats{}
	words := trie.NewTrie[rune]()
	for _, file := range cmd.Files {
		err := parseWordsFile(file, func(word string) error {
			words.Insert(cmd.items(word))
			stats.Input++
			return nil
		})
		if err != nil {
			return err
		}
		ctx.Logger.Debug("words loaded", "file", file, "total", stats.Input)
	}
	ctx.Logger.Info("trie ready", "words", words.Len())
	section(ctx.Out, "trie: %d words", words.Len())

	for _, w := range cmd.Contains {
		count := words.Count(cmd.items(w))
		report(ctx.Out, "contains", w, count > 0, countDetail(count))
	}
	for _, w := range cmd.Prefix {
		report(ctx.Out, "prefix", w, words.ContainsPrefix(cmd.items(w)), "")
	}
	for _, w := range cmd.Trace {
		path, err := words.TracePath(cmd.items(w))
		var notFound *trie.NotFoundError
		switch {
		case errors.As(err, &notFound):
			report(ctx.Out, "trace", w, false, fmt.Sprintf("at position %d", notFound.Position))
		case err != nil:
			return err
		default:
			report(ctx.Out, "trace", w, true, fmt.Sprint(path))
		}
	}
	for _, w := range cmd.Complete {
		var completions []string
		for word := range words.WithPrefix(cmd.items(w)) {
			if cmd.Limit > 0 && len(completions) == cmd.Limit {
				break
			}
			completions = append(completions, string(word))
		}
		report(ctx.Out, "complete", w, len(completions) > 0, strings.Join(completions, " "))
	}
	return nil
}

func (cmd *TrieCmd) items(word string) []rune {
	if cmd.IgnoreCase {
		word = strings.ToLower(word)
	}
	return []rune(word)
}

func countDetail(count uint) string {
	if count > 1 {
		return fmt.Sprintf("(%d times)", count)
	}
	return ""
}
