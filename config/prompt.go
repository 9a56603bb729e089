package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type question struct {
	prompt string
	name   string
	min    int
	value  *int
}

// Prompt asks for width, height, iterations and wait time in turn. A blank
// line or end of input keeps the default; anything that is not an integer in
// range is reported and asked again.
func Prompt(in io.Reader, out io.Writer) (Settings, error) {
	s := Default()
	width, height, iterations, delayMs := DefaultWidth, DefaultHeight, DefaultIterations, DefaultDelayMs

	questions := []question{
		{"Enter grid width: ", "WIDTH", 1, &width},
		{"Enter grid height: ", "HEIGHT", 1, &height},
		{"Enter iterations to perform: ", "ITERATIONS", 0, &iterations},
		{"Enter wait time (in milliseconds): ", "WAIT_TIME_MS", 0, &delayMs},
	}

	scanner := bufio.NewScanner(in)
	for _, q := range questions {
		if err := ask(scanner, out, q); err != nil {
			return Settings{}, err
		}
	}

	s.Params.Width = width
	s.Params.Height = height
	s.Params.Turns = iterations
	s.Params.Delay = time.Duration(delayMs) * time.Millisecond
	return s, nil
}

func ask(scanner *bufio.Scanner, out io.Writer, q question) error {
	for {
		if _, err := fmt.Fprint(out, q.prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read %s: %w", strings.ToLower(q.name), err)
			}
			_, err := fmt.Fprintf(out, "Defaulting to %s=%d\n", q.name, *q.value)
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			_, err := fmt.Fprintf(out, "Defaulting to %s=%d\n", q.name, *q.value)
			return err
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= q.min {
			*q.value = n
			return nil
		}
		if _, err := fmt.Fprintf(out, "Invalid %s %q: expected an integer >= %d\n", q.name, line, q.min); err != nil {
			return err
		}
	}
}
