// Package agent holds a Gemini chat session commenting market-share reports.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs a question and answer session with an Expert.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	// Print displays an answer, markdown as is by default.
	Print func(w io.Writer, md string)
}

// New creates an Agent writing to w and reading questions from r.
func New(w io.Writer, r io.Reader, e *Expert) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Expert: e}
}

const prompt = "insight> "

// Run asks the prompts in order, then reads questions until "bye" or the end
// of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Expert.chat == nil {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.w)
				return nil
			}
			if err != nil {
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}
		if err := a.Ask(ctx, input); err != nil {
			return err
		}
	}
}

// Ask asks a single question and prints the answer.
func (a *Agent) Ask(ctx context.Context, question string) error {
	content, err := a.Expert.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, p := range content.Parts {
		b.WriteString(p.Text)
	}
	if a.Print != nil {
		a.Print(a.w, b.String())
	} else {
		fmt.Fprintln(a.w, b.String())
	}
	return nil
}
