package main

import (
	"encoding/binary"
	"fmt"

	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"

	"github.com/streampack/bitqueue"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the worked bit queue example",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

// runDemo wraps a pre-filled 2-byte buffer holding 0xAAAA, mirrors the same
// pattern into an owned queue, and drains both in sub-byte slices, printing
// each decoded value.
func runDemo() error {
	pattern := make([]byte, 2)
	binary.LittleEndian.PutUint16(pattern, 0xaaaa)

	pre, err := bitqueue.Wrap(pattern)
	if err != nil {
		return err
	}
	owned, err := bitqueue.New(2)
	if err != nil {
		return err
	}
	pre.SetLogger(smlog.AppLog)
	owned.SetLogger(smlog.AppLog)

	if _, err := owned.WriteBits(pattern, 16); err != nil {
		return fmt.Errorf("write failure: %v", err)
	}

	res := make([]byte, 2)
	if _, err := pre.ReadBits(res, 8); err != nil {
		return fmt.Errorf("read failure: %v", err)
	}
	smlog.Info("m1 = %d", binary.LittleEndian.Uint16(res))

	if _, err := pre.WriteBits([]byte{0x0a}, 8); err != nil {
		return fmt.Errorf("write failure: %v", err)
	}

	res = make([]byte, 2)
	if _, err := owned.ReadBits(res, 5); err != nil {
		return fmt.Errorf("read failure: %v", err)
	}
	smlog.Info("m2 = %d", binary.LittleEndian.Uint16(res))

	res = make([]byte, 2)
	if _, err := owned.ReadBits(res, 1); err != nil {
		return fmt.Errorf("read failure: %v", err)
	}
	smlog.Info("m3 = %d", binary.LittleEndian.Uint16(res))

	if err := pre.Close(); err != nil {
		return err
	}
	return owned.Close()
}
