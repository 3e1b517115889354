// Package console implements the interactive inventory menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"asset-tracker/internal/service"

	"github.com/labstack/gommon/color"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options controls how the console renders output.
type Options struct {
	// NoColor disables status highlighting.
	NoColor bool
	// ForceColor enables highlighting even when output is not a terminal.
	ForceColor bool
}

// Console reads menu choices from an input stream and writes to an output stream.
type Console struct {
	svc     service.InventoryService
	in      io.Reader
	out     io.Writer
	lines   chan string
	readErr error
	printer *message.Printer
	color   *color.Color
	logger  zerolog.Logger
}

// New creates a console bound to svc.
func New(svc service.InventoryService, in io.Reader, out io.Writer, opts Options, logger zerolog.Logger) *Console {
	c := color.New()
	c.SetOutput(out)
	if opts.ForceColor {
		c.Enable()
	}
	if opts.NoColor {
		c.Disable()
	}

	return &Console{
		svc:     svc,
		in:      in,
		out:     out,
		printer: message.NewPrinter(language.English),
		color:   c,
		logger:  logger.With().Str("component", "console").Logger(),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Exit and end of input return nil; cancellation returns ctx.Err().
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.startReader(ctx)

	for {
		c.println("Please choose an option:")
		c.println("1. Add a product")
		c.println("2. List all products")
		c.println("3. Exit")

		choice, err := c.readLine(ctx)
		if err != nil {
			return c.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.command("add", func() error { return c.addProduct(ctx) })
		case "2":
			err = c.command("list", func() error { return c.listProducts(ctx) })
		case "3":
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return c.finish(err)
		}

		c.println("")
	}
}

// finish maps a read error to Run's result.
func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.logger.Info().Msg("input closed")
		return nil
	}
	return err
}

// command runs one menu action, logging its duration and recovering from panics.
// Only input errors are returned; anything else is reported and the loop continues.
func (c *Console) command(name string, fn func() error) (err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Interface("panic", r).
				Str("command", name).
				Msg("panic recovered")
			c.println("Something went wrong. Please try again.")
			err = nil
		}
	}()

	err = fn()

	c.logger.Info().
		Str("command", name).
		Dur("duration", time.Since(start)).
		Msg("command finished")

	return err
}

// startReader feeds input lines to c.lines until input ends or ctx is done.
func (c *Console) startReader(ctx context.Context) {
	c.lines = make(chan string)
	scanner := bufio.NewScanner(c.in)

	go func() {
		defer close(c.lines)
		for scanner.Scan() {
			select {
			case c.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		c.readErr = scanner.Err()
	}()
}

// readLine returns the next input line without its line ending.
func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", fmt.Errorf("failed to read input: %w", c.readErr)
			}
			return "", io.EOF
		}
		return strings.TrimSuffix(line, "\r"), nil
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// money formats d with thousands separators and two decimals. The digits
// come from the decimal itself; amounts beyond int64 are printed ungrouped.
func (c *Console) money(d decimal.Decimal) string {
	rounded := d.Round(2)
	fixed := rounded.StringFixed(2)

	whole := rounded.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return fixed
	}

	grouped := c.printer.Sprintf("%d", whole.IntPart())
	if rounded.IsNegative() && whole.IsZero() {
		grouped = "-" + grouped
	}
	return grouped + "." + fixed[len(fixed)-2:]
}
