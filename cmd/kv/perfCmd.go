package kv

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pablin202/kvstore/cmd/util"
	"github.com/pablin202/kvstore/lib/kv"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for kvstore engines",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix   = "__perf"
	perfOps         = 10_000
	perfValueSizeKB = 1
	perfKeySpread   = 100
	perfSkip        = make([]string, 0)
)

func init() {
	// add flags
	key := "ops"
	perfTestCmd.Flags().Int(key, 10_000, util.WrapString("Number of operations to run per benchmark"))
	key = "value-size"
	perfTestCmd.Flags().Int(key, 1, util.WrapString("Size of the value used for writes (in KB)"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. put,get)"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfOps = viper.GetInt("ops")
	perfValueSizeKB = viper.GetInt("value-size")
	perfKeySpread = viper.GetInt("keys")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func shouldSkip(name string) bool {
	for _, s := range perfSkip {
		if strings.TrimSpace(s) == name {
			return true
		}
	}
	return false
}

// perfKey returns the i-th benchmark key, cycling through the key spread
func perfKey(bench string, i int) string {
	return fmt.Sprintf("%s-%s-%d", perfKeyPrefix, bench, i%perfKeySpread)
}

// measure runs fn perfOps times and records each latency in a timer
func measure(fn func(i int) error) (gometrics.Timer, error) {
	timer := gometrics.NewTimer()
	for i := 0; i < perfOps; i++ {
		start := time.Now()
		if err := fn(i); err != nil {
			return nil, err
		}
		timer.Update(time.Since(start))
	}
	return timer, nil
}

// printResult prints one benchmark's latency distribution
func printResult(name string, timer gometrics.Timer) {
	ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("%-10s count=%-8d mean=%-12s p50=%-12s p95=%-12s p99=%-12s\n",
		name,
		timer.Count(),
		time.Duration(int64(timer.Mean())),
		time.Duration(int64(ps[0])),
		time.Duration(int64(ps[1])),
		time.Duration(int64(ps[2])),
	)
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for kvstore engines")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("  Engine:     %s\n", viper.GetString("engine"))
	fmt.Printf("  Ops:        %d\n", perfOps)
	fmt.Printf("  Value size: %d KB\n", perfValueSizeKB)
	fmt.Printf("  Key spread: %d\n", perfKeySpread)
	fmt.Println()

	fmt.Println("starting tests...")

	value := make([]byte, perfValueSizeKB*1024)

	if !shouldSkip("put") {
		timer, err := measure(func(i int) error {
			return store.Put(perfKey("put", i), value)
		})
		if err != nil {
			return fmt.Errorf("put benchmark failed: %w", err)
		}
		printResult("put", timer)
	}

	if !shouldSkip("get") {
		// ensure the keys exist
		for i := 0; i < perfKeySpread; i++ {
			if err := store.Put(perfKey("get", i), value); err != nil {
				return fmt.Errorf("get benchmark setup failed: %w", err)
			}
		}
		timer, err := measure(func(i int) error {
			_, err := store.Get(perfKey("get", i))
			return err
		})
		if err != nil {
			return fmt.Errorf("get benchmark failed: %w", err)
		}
		printResult("get", timer)
	}

	if !shouldSkip("contains") {
		timer, err := measure(func(i int) error {
			_, err := store.Contains(perfKey("contains", i))
			return err
		})
		if err != nil {
			return fmt.Errorf("contains benchmark failed: %w", err)
		}
		printResult("contains", timer)
	}

	if !shouldSkip("remove") {
		timer, err := measure(func(i int) error {
			if err := store.Put(perfKey("remove", i), value); err != nil {
				return err
			}
			return store.Remove(perfKey("remove", i))
		})
		if err != nil {
			return fmt.Errorf("remove benchmark failed: %w", err)
		}
		printResult("put+remove", timer)
	}

	// cleanup: only the keys this tool generated, the store may hold user data
	for _, bench := range []string{"put", "get", "contains", "remove"} {
		for i := 0; i < perfKeySpread; i++ {
			if err := store.Remove(perfKey(bench, i)); err != nil {
				if code, ok := kv.CodeOf(err); ok && code == kv.ErrCKeyNotFound {
					continue
				}
				log.Printf("(%s) - error removing benchmark key: %v\n", bench, err)
			}
		}
	}
	return nil
}
