// EntroPass generates cryptographically secure passphrases, passwords and
// UUIDv4 identifiers from the command line, sizing them by entropy budget.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/entropass/entropass-go/internal/credential"
	"github.com/entropass/entropass-go/internal/crypto"
	"github.com/entropass/entropass-go/internal/wordlist"
)

const version = "1.0.0"

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// optionalInt is a flag value that distinguishes "not given" from zero,
// which the uppercase directive requires: 0 uppercases everything.
type optionalInt struct {
	set   bool
	value int
}

func (o *optionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be an integer: %q", s)
	}
	o.set = true
	o.value = v
	return nil
}

func (o *optionalInt) ptr() *int {
	if !o.set {
		return nil
	}
	return &o.value
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		passwordMode bool
		uuidMode     bool

		words       int
		numbers     int
		uppercase   optionalInt
		entropyBits float64
		separator   string

		length        int
		noLowercase   bool
		noUppercase   bool
		noDigits      bool
		noPunctuation bool

		inputFile   string
		dicewareFmt bool
		builtinName string

		outputFile  string
		verbose     bool
		quiet       bool
		showVersion bool
	)

	flag.BoolVar(&passwordMode, "password", false, "Generate a password instead of a passphrase")
	flag.BoolVar(&uuidMode, "uuid4", false, "Generate a UUID version 4 instead of a passphrase")

	flag.IntVar(&words, "w", -1, "Number of words (default: derived from the entropy target)")
	flag.IntVar(&words, "words", -1, "Number of words (default: derived from the entropy target)")
	flag.IntVar(&numbers, "n", 0, "Number of random numbers appended to the passphrase")
	flag.IntVar(&numbers, "numbers", 0, "Number of random numbers appended to the passphrase")
	flag.Var(&uppercase, "U", "Uppercase directive: N>0 uppercases N words, N<0 all but |N|, 0 all")
	flag.Var(&uppercase, "uppercase", "Uppercase directive: N>0 uppercases N words, N<0 all but |N|, 0 all")
	flag.Float64Var(&entropyBits, "b", 77, "Entropy target in bits for derived counts and lengths")
	flag.Float64Var(&entropyBits, "entropy-bits", 77, "Entropy target in bits for derived counts and lengths")
	flag.StringVar(&separator, "s", credential.DefaultSeparator, "Separator between passphrase elements")
	flag.StringVar(&separator, "separator", credential.DefaultSeparator, "Separator between passphrase elements")

	flag.IntVar(&length, "length", -1, "Password length (default: derived from the entropy target)")
	flag.BoolVar(&noLowercase, "no-lowercase", false, "Exclude lowercase letters from passwords")
	flag.BoolVar(&noUppercase, "no-uppercase", false, "Exclude uppercase letters from passwords")
	flag.BoolVar(&noDigits, "no-digits", false, "Exclude digits from passwords")
	flag.BoolVar(&noPunctuation, "no-punctuation", false, "Exclude punctuation from passwords")

	flag.StringVar(&inputFile, "i", "", "Path to a wordlist file, one word per line")
	flag.StringVar(&inputFile, "input", "", "Path to a wordlist file, one word per line")
	flag.BoolVar(&dicewareFmt, "d", false, "Treat the input file as diceware format (key column, word column)")
	flag.BoolVar(&dicewareFmt, "diceware", false, "Treat the input file as diceware format (key column, word column)")
	flag.StringVar(&builtinName, "builtin", wordlist.EffLarge, "Built-in wordlist: eff-large, eff-short or bip39")

	flag.StringVar(&outputFile, "o", "", "Write the secret to this file instead of stdout")
	flag.StringVar(&outputFile, "output", "", "Write the secret to this file instead of stdout")
	flag.BoolVar(&verbose, "v", false, "Report the entropy of the generated secret on stderr")
	flag.BoolVar(&verbose, "verbose", false, "Report the entropy of the generated secret on stderr")
	flag.BoolVar(&quiet, "q", false, "Show only errors")
	flag.BoolVar(&quiet, "quiet", false, "Show only errors")
	flag.BoolVar(&showVersion, "version", false, "Show version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "EntroPass — entropy-budgeted secret generator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  entropass [options]              Generate a passphrase\n")
		fmt.Fprintf(os.Stderr, "  entropass --password [options]   Generate a password\n")
		fmt.Fprintf(os.Stderr, "  entropass --uuid4                Generate a UUIDv4\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  entropass                        # 77-bit passphrase from the EFF large list\n")
		fmt.Fprintf(os.Stderr, "  entropass -w 6 -n 1 -s -         # 6 words and a number, dash-separated\n")
		fmt.Fprintf(os.Stderr, "  entropass --password -b 128      # password reaching 128 bits\n")
		fmt.Fprintf(os.Stderr, "  entropass -i words.txt -d        # passphrase from a diceware file\n")
		fmt.Fprintf(os.Stderr, "\nExit Codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Success\n")
		fmt.Fprintf(os.Stderr, "  1  Failure\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("entropass %s\n", version)
		return ExitSuccess
	}

	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cred := credential.New(crypto.SystemSource{})

	var bits float64
	var err error

	switch {
	case uuidMode:
		bits, err = generateUUID(cred)
	case passwordMode:
		bits, err = generatePassword(cred, length, entropyBits, noLowercase, noUppercase, noDigits, noPunctuation)
	default:
		bits, err = generatePassphrase(cred, words, numbers, uppercase.ptr(), entropyBits, separator, inputFile, dicewareFmt, builtinName)
	}
	if err != nil {
		logger.Error("generation failed", "error", err)
		return ExitFailure
	}

	secret := cred.String()
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(secret+"\n"), 0o600); err != nil {
			logger.Error("failed to write output file", "path", outputFile, "error", err)
			return ExitFailure
		}
	} else {
		fmt.Println(secret)
	}

	if verbose {
		logger.Info("secret generated", "entropy_bits", fmt.Sprintf("%.2f", bits))
	}

	return ExitSuccess
}

func generatePassphrase(cred *credential.Credential, words, numbers int, uppercase *int, entropyBits float64, separator, inputFile string, dicewareFmt bool, builtinName string) (float64, error) {
	var list wordlist.List
	var err error
	if inputFile != "" {
		list, err = wordlist.LoadFile(inputFile, dicewareFmt)
	} else {
		list, err = wordlist.Builtin(builtinName)
	}
	if err != nil {
		return 0, err
	}

	cred.SetWordlist(list)
	cred.SetSeparator(separator)

	if err := cred.SetNumberCount(numbers); err != nil {
		return 0, err
	}

	if words < 0 {
		if err := cred.SetEntropyBits(entropyBits); err != nil {
			return 0, err
		}
		words, err = cred.WordsNeeded()
		if err != nil {
			return 0, err
		}
	}
	if err := cred.SetWordCount(words); err != nil {
		return 0, err
	}

	if _, err := cred.GeneratePassphrase(uppercase); err != nil {
		return 0, err
	}
	return cred.PassphraseBits()
}

func generatePassword(cred *credential.Credential, length int, entropyBits float64, noLowercase, noUppercase, noDigits, noPunctuation bool) (float64, error) {
	cred.SetSeparator("")
	cred.SetClasses(!noLowercase, !noUppercase, !noDigits, !noPunctuation)

	var err error
	if length < 0 {
		if err := cred.SetEntropyBits(entropyBits); err != nil {
			return 0, err
		}
		length, err = cred.PasswordLengthNeeded()
		if err != nil {
			return 0, err
		}
	}
	if err := cred.SetPasswordLength(length); err != nil {
		return 0, err
	}

	if _, err := cred.GeneratePassword(); err != nil {
		return 0, err
	}
	return cred.PasswordBits()
}

func generateUUID(cred *credential.Credential) (float64, error) {
	cred.SetSeparator("-")
	if _, err := cred.GenerateUUID4(); err != nil {
		return 0, err
	}
	// 122 random bits: 128 minus the fixed version and variant bits.
	return 122, nil
}
