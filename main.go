package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	verifyFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "load flags from a YAML `FILE`",
			EnvVars: []string{"PTAU_CONFIG"},
		},
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "round",
			Usage:   "index of the contribution to audit",
			EnvVars: []string{"PTAU_ROUND"},
		}),
		altsrc.NewPathFlag(&cli.PathFlag{
			Name:    "before",
			Usage:   "challenge `FILE` the participant received",
			EnvVars: []string{"PTAU_BEFORE"},
		}),
		altsrc.NewPathFlag(&cli.PathFlag{
			Name:    "after",
			Usage:   "challenge `FILE` produced from the participant's response",
			EnvVars: []string{"PTAU_AFTER"},
		}),
		altsrc.NewPathFlag(&cli.PathFlag{
			Name:    "attestations",
			Usage:   "YAML `FILE` with the published response digests",
			EnvVars: []string{"PTAU_ATTESTATIONS"},
		}),
		altsrc.NewIntFlag(powerFlag()),
		altsrc.NewStringFlag(curveFlag()),
		altsrc.NewBoolFlag(compressedFlag()),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "all",
			Usage:   "run every check and report all failures",
			EnvVars: []string{"PTAU_ALL"},
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "seed",
			Usage:   "seed the random linear combinations, for reproducing a run only",
			EnvVars: []string{"PTAU_SEED"},
		}),
	}

	return &cli.App{
		Name:      "ptau-audit",
		Usage:     "Use this tool to audit the rounds of a powers of tau ceremony",
		UsageText: "ptau-audit [global options] command [options] [arguments...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "trace, debug, info, warn or error",
				EnvVars: []string{"PTAU_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "console",
				Usage:   "console or json",
				EnvVars: []string{"PTAU_LOG_FORMAT"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:        "verify",
				Usage:       "verify --round <k> --before <challenge> --after <challenge> --attestations <file>",
				Description: "check that the contribution of round k turned the before challenge into the after challenge",
				Aliases:     []string{"v"},
				Flags:       verifyFlags,
				Before:      altsrc.InitInputSourceWithContext(verifyFlags, altsrc.NewYamlSourceFromFlagFunc("config")),
				Action:      verify,
			},
			{
				Name:        "hash",
				Usage:       "hash <file>",
				Description: "print the BLAKE2b-512 digest of a file",
				Action:      hash,
			},
			{
				Name:        "init",
				Usage:       "init <output>",
				Description: "write the first challenge of a ceremony",
				Aliases:     []string{"i"},
				Flags:       []cli.Flag{powerFlag(), curveFlag(), compressedFlag()},
				Action:      initialize,
			},
			{
				Name:        "contribute",
				Usage:       "contribute <challenge> <next challenge>",
				Description: "apply fresh random secrets to a challenge",
				Aliases:     []string{"c"},
				Flags:       []cli.Flag{powerFlag(), curveFlag(), compressedFlag()},
				Action:      contribute,
			},
		},
	}
}

func powerFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "power",
		Value:   21,
		Usage:   "ceremony supports circuits of up to 2^power constraints",
		EnvVars: []string{"PTAU_POWER"},
	}
}

func curveFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "curve",
		Value:   "bls12-381",
		Usage:   "bn254 or bls12-381",
		EnvVars: []string{"PTAU_CURVE"},
	}
}

func compressedFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "compressed",
		Usage:   "points are written in compressed form",
		EnvVars: []string{"PTAU_COMPRESSED"},
	}
}
