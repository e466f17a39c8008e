package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/cihub/seelog"
	"github.com/zeebo/errs"

	"github.com/calebcase/radix/digits"
)

// Error is the class of errors reported by the command.
var Error = errs.Class("radix")

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const usage = `usage: radix [-decode] [-strict] [-base R] [-roundtrip] [-demo] [-v] [N ...]

Converts each N between its decimal value and its base R digits written as a
decimal integer (R defaults to 2, so 5 <-> 101). With no N, reads one integer
per line from standard input.

`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type converter struct {
	enc *digits.Encoder
	dec *digits.Decoder

	decode    bool
	roundtrip bool

	out io.Writer
	log log.LoggerInterface
}

// convert writes the conversion of the decimal text s to out.
func (c *converter) convert(s string) (err error) {
	defer Error.WrapP(&err)

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return digits.InvalidArgument.New("%q is not a decimal integer", s)
	}

	forward, backward := c.enc.Encode, c.dec.Decode
	if c.decode {
		forward, backward = backward, forward
	}

	result, err := forward(n)
	if err != nil {
		return err
	}

	if !c.roundtrip {
		_, err = fmt.Fprintln(c.out, result)
		return err
	}

	back, err := backward(result)
	if err != nil {
		return err
	}

	if back != n {
		c.log.Warnf("%d does not round trip: %d -> %d", n, result, back)
	}

	_, err = fmt.Fprintln(c.out, n, result, back)
	return err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("radix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	decode := fs.Bool("decode", false, "convert from the encoded form back to decimal")
	strict := fs.Bool("strict", false, "reject encoded digits not valid in the radix")
	base := fs.Uint("base", 2, "radix of the encoded digits (2 to 10)")
	roundtrip := fs.Bool("roundtrip", false, "print input, result and the result converted back")
	demo := fs.Bool("demo", false, "print the round trip of 2 through 10")
	verbose := fs.Bool("v", false, "log each conversion")

	err := fs.Parse(args)
	if err == flag.ErrHelp {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	var level log.LogLevel = log.WarnLvl
	if *verbose {
		level = log.DebugLvl
	}

	logger, err := log.LoggerFromWriterWithMinLevelAndFormat(stderr, level, "radix: %LEVEL %Msg%n")
	if err != nil {
		fmt.Fprintf(stderr, "radix: %+v\n", err)
		return exitUsage
	}
	defer logger.Flush()

	if *base < digits.MinRadix || *base > digits.MaxRadix {
		logger.Errorf("radix %d not in [%d, %d]", *base, digits.MinRadix, digits.MaxRadix)
		return exitUsage
	}

	schema := digits.Schema{
		Radix:  uint8(*base),
		Strict: *strict,
	}

	err = schema.Validate()
	if err != nil {
		logger.Errorf("%v", err)
		return exitUsage
	}

	c := &converter{
		enc:       digits.NewEncoder(schema),
		dec:       digits.NewDecoder(schema),
		decode:    *decode,
		roundtrip: *roundtrip,
		out:       stdout,
		log:       logger,
	}

	if *demo {
		c.decode = false
		c.roundtrip = true

		for i := 2; i <= 10; i++ {
			err = c.convert(strconv.Itoa(i))
			if err != nil {
				logger.Errorf("%v", err)
				return exitInvalid
			}
		}

		return exitOK
	}

	inputs := fs.Args()
	code := exitOK

	handle := func(s string) {
		logger.Debugf("converting %q with %+v", s, schema)

		err := c.convert(s)
		if err != nil {
			logger.Errorf("%v", err)
			code = exitInvalid
		}
	}

	if len(inputs) > 0 {
		for _, s := range inputs {
			handle(s)
		}

		return code
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		handle(s)
	}

	err = scanner.Err()
	if err != nil {
		logger.Errorf("reading input: %v", err)
		return exitInvalid
	}

	return code
}
