package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-patientview/pkg/chunk"
)

func catCmd(a *app) *cobra.Command {
	var (
		path      string
		length    int64
		blockSize int
	)

	cmd := &cobra.Command{
		Use:   "cat",
		Short: "Stream a file to stdout in fixed-size blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				return errors.New("cli: --file is required")
			}
			if length < 0 {
				return fmt.Errorf("cli: --length must not be negative, got %d", length)
			}
			size := a.cfg.BlockSize
			if cmd.Flags().Changed("block-size") {
				if blockSize <= 0 {
					return fmt.Errorf("cli: --block-size must be positive, got %d", blockSize)
				}
				size = blockSize
			}

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cli: open %s: %w", path, err)
			}
			n, err := stream(cmd.OutOrStdout(), file, length, size)
			if err != nil {
				return fmt.Errorf("cli: stream %s: %w", path, err)
			}
			a.log.Debug().Str("file", path).Int64("bytes", n).Int("block_size", size).Msg("streamed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "file to stream")
	cmd.Flags().Int64Var(&length, "length", 0, "stop after this many bytes (0 reads to the end)")
	cmd.Flags().IntVar(&blockSize, "block-size", chunk.DefaultBlockSize, "bytes per read (defaults to block_size from config)")
	return cmd
}

// stream copies src to w through the chunk reader and closes src. A close
// failure is reported when the copy itself succeeded.
func stream(w io.Writer, src io.ReadCloser, length int64, blockSize int) (n int64, err error) {
	reader := chunk.New(src, chunk.WithLength(length), chunk.WithBlockSize(blockSize))
	defer func() {
		if cerr := reader.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return reader.WriteTo(w)
}
