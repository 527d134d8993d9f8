// Command dilithium5-kat drives the dilithium5 package from the command
// line: generating key pairs, signing, verifying, and replaying NIST KAT
// fixture files against the implementation.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/latticesig/dilithium5"
	"github.com/latticesig/dilithium5/internal/kat"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "dilithium5-kat",
		Usage: "generate, sign, verify, and replay KAT fixtures for dilithium5",
		Commands: []*cli.Command{
			keygenCommand(&log),
			signCommand(&log),
			verifyCommand(&log),
			runCommand(&log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func keygenCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "generate a key pair from a fresh random seed and print it as hex",
		Action: func(c *cli.Context) error {
			pk, sk, err := dilithium5.MakeKeys(rand.Reader)
			if err != nil {
				return fmt.Errorf("make keys: %w", err)
			}
			log.Info().Int("pk_size", len(pk)).Int("sk_size", len(sk)).Msg("generated key pair")
			fmt.Println("pk =", hex.EncodeToString(pk[:]))
			fmt.Println("sk =", hex.EncodeToString(sk[:]))
			return nil
		},
	}
}

func signCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "sign a message under a hex-encoded secret key",
		ArgsUsage: "<sk-hex> <message>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("sign requires exactly 2 arguments")
			}
			var sk [dilithium5.SecretKeySize]byte
			if err := decodeFixed(c.Args().Get(0), sk[:], dilithium5.ErrInvalidSecretKeySize); err != nil {
				return fmt.Errorf("decode sk: %w", err)
			}
			sig := dilithium5.Sign([]byte(c.Args().Get(1)), &sk)
			log.Info().Int("sig_size", len(sig)).Msg("signed message")
			fmt.Println(hex.EncodeToString(sig[:]))
			return nil
		},
	}
}

func verifyCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "verify a hex-encoded signature against a hex-encoded public key",
		ArgsUsage: "<pk-hex> <sig-hex> <message>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 3 {
				return fmt.Errorf("verify requires exactly 3 arguments")
			}
			var pk [dilithium5.PublicKeySize]byte
			if err := decodeFixed(c.Args().Get(0), pk[:], dilithium5.ErrInvalidPublicKeySize); err != nil {
				return fmt.Errorf("decode pk: %w", err)
			}
			var sig [dilithium5.SignatureSize]byte
			if err := decodeFixed(c.Args().Get(1), sig[:], nil); err != nil {
				return fmt.Errorf("decode sig: %w", err)
			}
			ok := dilithium5.Verify([]byte(c.Args().Get(2)), &sig, &pk)
			log.Info().Bool("valid", ok).Msg("verified signature")
			if !ok {
				return cli.Exit("signature invalid", 1)
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func runCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "replay every record of a KAT fixture file against MakeKeys/Sign/Verify",
		ArgsUsage: "<fixtures-file>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("run requires exactly 1 argument")
			}
			data, err := os.ReadFile(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("read fixtures: %w", err)
			}
			fixtures, err := kat.ParseFixtures(string(data))
			if err != nil {
				return fmt.Errorf("parse fixtures: %w", err)
			}
			log.Info().Int("count", len(fixtures)).Msg("loaded fixtures")

			failures := 0
			for _, f := range fixtures {
				rl := log.With().Int("record", f.Count).Logger()
				if len(f.SK) != dilithium5.SecretKeySize {
					rl.Warn().Err(dilithium5.ErrInvalidSecretKeySize).Int("sk_len", len(f.SK)).Msg("skipping record with unexpected secret key size")
					continue
				}
				var sk [dilithium5.SecretKeySize]byte
				copy(sk[:], f.SK)
				var pk [dilithium5.PublicKeySize]byte
				copy(pk[:], f.PK)

				sig := dilithium5.Sign(f.M, &sk)
				if !dilithium5.Verify(f.M, &sig, &pk) {
					rl.Error().Msg("self-verification failed")
					failures++
					continue
				}

				var wantSig [dilithium5.SignatureSize]byte
				copy(wantSig[:], f.Sig)
				if sig != wantSig {
					rl.Error().Msg("signature mismatch against fixture")
					failures++
					continue
				}
				rl.Info().Msg("ok")
			}

			if failures > 0 {
				return cli.Exit(fmt.Sprintf("%d record(s) failed", failures), 1)
			}
			return nil
		},
	}
}

// decodeFixed hex-decodes s into out, which must be exactly len(out) bytes
// long. sizeErr, if non-nil, is returned (wrapped with the observed sizes)
// instead of a generic error when the decoded length doesn't match.
func decodeFixed(s string, out []byte, sizeErr error) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != len(out) {
		if sizeErr != nil {
			return fmt.Errorf("%w: expected %d bytes, got %d", sizeErr, len(out), len(b))
		}
		return fmt.Errorf("expected %d bytes, got %d", len(out), len(b))
	}
	copy(out, b)
	return nil
}
