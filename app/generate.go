package app

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codeminter/codeminter/internal/charset"
	"github.com/codeminter/codeminter/internal/config"
	"github.com/codeminter/codeminter/internal/generator"
	"github.com/codeminter/codeminter/internal/logger"
	"github.com/codeminter/codeminter/internal/output"
	"github.com/codeminter/codeminter/internal/progress"
)

func init() { //nolint: gochecknoinits
	generateCmd.Flags().StringVar(&charsetName, "charset", charset.Recommended,
		"Character set for code generation (recommended, alphanumeric, alpha, numeric, custom)")
	generateCmd.Flags().StringVar(&omitChars, "omit", "", "Characters to be removed from the selected character set")
	generateCmd.Flags().StringVar(&addChars, "add", "", "Characters to be added to the selected character set")
	generateCmd.Flags().StringVar(&prefix, "prefix", "", "Add a prefix to each code")
	generateCmd.Flags().StringVar(&suffix, "suffix", "", "Add a suffix to each code")
	generateCmd.Flags().StringVar(&caseOption, "case", charset.CaseUpper, "Letter case of alpha characters (upper, lower)")
	generateCmd.Flags().StringVar(&fileName, "filename", "", "Output file name (default codes_<timestamp>.csv)")
	generateCmd.Flags().StringVar(&encodingName, "encoding", "utf-8", "Encoding of the output file")
	generateCmd.Flags().IntVar(&maxLines, "maxlines", 0, "Maximum number of codes per file (default all in one file)")
	generateCmd.Flags().StringVar(&outDir, "outdir", "codes", "Directory the code files are written to")

	generateCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(generateCmd)
}

var (
	cfg config.Config
	err error

	configPath   string // Path to the configuration directory
	charsetName  string
	omitChars    string
	addChars     string
	prefix       string
	suffix       string
	caseOption   string
	fileName     string
	encodingName string
	maxLines     int
	outDir       string

	generateCmd = &cobra.Command{
		Use:   "generate <count> <length>",
		Short: "Generate unique codes and save them to one or more CSV files",
		Args:  cobra.ExactArgs(2),

		SilenceUsage: true,

		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			applyConfigDefaults(cmd)

			return logger.Init(cfg.Log)
		},
		RunE: runGenerate,
	}
)

// applyConfigDefaults lets the config file provide defaults for every flag
// the user did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("charset") {
		charsetName = cfg.Generate.Charset
	}

	if !cmd.Flags().Changed("case") && cfg.Generate.Case != "" {
		caseOption = cfg.Generate.Case
	}

	if !cmd.Flags().Changed("encoding") {
		encodingName = cfg.Generate.Encoding
	}

	if !cmd.Flags().Changed("maxlines") {
		maxLines = cfg.Generate.MaxLines
	}

	if !cmd.Flags().Changed("outdir") {
		outDir = cfg.Generate.OutputDir
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, convErr := strconv.Atoi(args[0])
	if convErr != nil || count < 1 {
		return ErrCountNotInteger
	}

	length, convErr := strconv.Atoi(args[1])
	if convErr != nil || length < 1 {
		return ErrLengthNotInteger
	}

	var customChars string

	if strings.EqualFold(charsetName, charset.Custom) {
		charsetName = charset.Custom

		if customChars, err = promptCustomCharset(cmd); err != nil {
			return err
		}
	}

	alphabet, err := charset.Build(charsetName, caseOption, omitChars, addChars, customChars)
	if err != nil {
		return err
	}

	name := fileName
	if name == "" {
		name = "codes_" + time.Now().Format("20060102150405") + ".csv"
	}

	// The writer validates encoding and maxlines up front, before any
	// sampling work is done.
	writer, err := output.NewWriter(outDir, name, encodingName, maxLines)
	if err != nil {
		return err
	}

	spec := generator.Spec{
		Count:  count,
		Length: length,
		Prefix: prefix,
		Suffix: suffix,
	}

	log.Info().
		Int("count", count).
		Int("length", length).
		Int("alphabet", len(alphabet)).
		Str("charset", charsetName).
		Msg("generating codes")

	reporter := progress.NewReporter(cmd.OutOrStdout())

	codes, err := generator.Generate(alphabet, spec, reporter.Update)
	if err != nil {
		return err
	}

	if err = writer.Save(codes); err != nil {
		return err
	}

	reporter.Finish()
	fmt.Fprintln(cmd.OutOrStdout(), "Codes saved successfully.")

	log.Info().
		Int("codes", len(codes)).
		Strs("files", writer.Files(len(codes))).
		Msg("codes saved")

	return nil
}

// promptCustomCharset asks for the custom alphabet interactively. An empty
// reply aborts the run before anything is generated.
func promptCustomCharset(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter a custom character set: ")

	line, readErr := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if readErr != nil && line == "" {
		return "", ErrEmptyCustomCharset
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", ErrEmptyCustomCharset
	}

	return line, nil
}
