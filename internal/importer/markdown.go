package importer

import (
	"bufio"
	"io"
	"strings"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
	separator      = "---"
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
)

// ParseMarkdown extracts cards written as "Q: ..." / "A: ..." blocks.
// A block continues over following lines until the next prefix, a "---"
// separator or the end of input. Cards without an answer are dropped.
func ParseMarkdown(r io.Reader) ([]Card, error) {
	scanner := bufio.NewScanner(r)
	var (
		cards   []Card
		current Card
		block   []string
		st      = seeking
	)

	flushBlock := func() {
		if len(block) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(block, "\n"))
		switch st {
		case readingQuestion:
			current.Question = content
		case readingAnswer:
			current.Answer = content
		}
		block = nil
	}

	finishCard := func() {
		flushBlock()
		if current.Question != "" && current.Answer != "" {
			cards = append(cards, current)
		}
		current = Card{}
		st = seeking
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == separator:
			finishCard()
		case strings.HasPrefix(line, questionPrefix):
			if st != seeking {
				finishCard()
			}
			st = readingQuestion
			block = append(block, strings.TrimPrefix(line, questionPrefix))
		case strings.HasPrefix(line, answerPrefix):
			flushBlock()
			st = readingAnswer
			block = append(block, strings.TrimPrefix(line, answerPrefix))
		case st != seeking:
			block = append(block, line)
		}
	}

	finishCard()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}
