package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"

	"github.com/streampack/bitqueue"
	"github.com/streampack/bitqueue/config"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure queue round-trip throughput over a sweep of chunk sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cfg)
	},
}

func runBench(cfg *config.Config) error {
	cases := genBenchCases(cfg)
	data := make([][]string, 0, len(cases))

	for i, c := range cases {
		smlog.Info("bench %d/%d starting: queue=%dB write=%db read=%db",
			i+1, len(cases), c.QueueSize, c.WriteChunk, c.ReadChunk)

		elapsed, bits, err := benchCase(c)
		if err != nil {
			return err
		}

		data = append(data, []string{
			bytefmt.ByteSize(uint64(c.QueueSize)),
			strconv.Itoa(int(c.WriteChunk)),
			strconv.Itoa(int(c.ReadChunk)),
			strconv.Itoa(int(c.Rounds)),
			elapsed.Round(time.Microsecond).String(),
			fmt.Sprintf("%.1f Mbit/s", float64(bits)/elapsed.Seconds()/(1<<20)),
		})
	}

	report([]string{"queue", "w-chunk", "r-chunk", "rounds", "elapsed", "throughput"}, data)
	return nil
}

// benchCase fills the queue in write-chunk steps and drains it in read-chunk
// steps, Rounds times, returning the elapsed time and the bits moved.
func benchCase(cfg config.Config) (time.Duration, int, error) {
	q, err := bitqueue.New(int(cfg.QueueSize))
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		_ = q.Close()
	}()

	src := make([]byte, (cfg.WriteChunk+7)/8)
	for i := range src {
		src[i] = byte(0xb5 ^ i)
	}
	dst := make([]byte, (cfg.ReadChunk+7)/8)

	moved := 0
	start := time.Now()
	for round := uint(0); round < cfg.Rounds; round++ {
		for q.Free() >= int(cfg.WriteChunk) {
			if _, err := q.WriteBits(src, int(cfg.WriteChunk)); err != nil {
				return 0, 0, err
			}
		}
		for q.Occupancy() >= int(cfg.ReadChunk) {
			for i := range dst {
				dst[i] = 0
			}
			n, err := q.ReadBits(dst, int(cfg.ReadChunk))
			if err != nil {
				return 0, 0, err
			}
			moved += n
		}
	}

	return time.Since(start), moved, nil
}

// genBenchCases sweeps a few characteristic chunk pairings around the
// configured one.
func genBenchCases(cfg *config.Config) []config.Config {
	cases := []config.Config{*cfg}
	for _, chunks := range [][2]uint{{1, 1}, {8, 8}, {16, 16}, {13, 5}, {7, 3}} {
		c := *cfg
		c.WriteChunk, c.ReadChunk = chunks[0], chunks[1]
		if c.Validate() == nil {
			cases = append(cases, c)
		}
	}
	return cases
}

func report(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
