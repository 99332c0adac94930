package logger

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/aws/aws-sdk-go-v2/aws"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

type feedStat struct {
	reads int64
	bytes int64
}

var (
	marketReads int64
	bookReads   int64
	tradeReads  int64
	staleDrops  int64
	warnCounts  sync.Map // map[string]*int64, keyed by component
	errorCounts sync.Map // map[string]*int64, keyed by component
	feeds       sync.Map // map[string]*feedStat, keyed by feed name
)

func recordWarn(component string) {
	v, _ := warnCounts.LoadOrStore(component, new(int64))
	atomic.AddInt64(v.(*int64), 1)
}

func recordError(component string) {
	v, _ := errorCounts.LoadOrStore(component, new(int64))
	atomic.AddInt64(v.(*int64), 1)
}

// IncrementMarketRead records one market list snapshot fetch.
func IncrementMarketRead(size int) {
	atomic.AddInt64(&marketReads, 1)
	recordFeed("markets", size)
}

// IncrementBookRead records one order book snapshot fetch.
func IncrementBookRead(size int) {
	atomic.AddInt64(&bookReads, 1)
	recordFeed("book", size)
}

// IncrementTradeRead records one trade tape snapshot fetch.
func IncrementTradeRead(size int) {
	atomic.AddInt64(&tradeReads, 1)
	recordFeed("trades", size)
}

// IncrementStaleDrop records a fetch result discarded because its polling
// key was no longer active when it completed.
func IncrementStaleDrop() {
	atomic.AddInt64(&staleDrops, 1)
}

func recordFeed(name string, size int) {
	v, _ := feeds.LoadOrStore(name, &feedStat{})
	fs := v.(*feedStat)
	atomic.AddInt64(&fs.reads, 1)
	atomic.AddInt64(&fs.bytes, int64(size))
}

func countMap(m *sync.Map) map[string]int64 {
	out := map[string]int64{}
	m.Range(func(k, v any) bool {
		out[k.(string)] = atomic.LoadInt64(v.(*int64))
		return true
	})
	return out
}

// StartReport begins periodic logging of system and feed statistics.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(ctx, log)
			}
		}
	}()
}

func logReport(ctx context.Context, log *Log) {
	cpuPercent, _ := cpu.Percent(0, false)
	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")
	netStats, _ := gnet.IOCounters(false)

	feedData := map[string]map[string]int64{}
	feeds.Range(func(k, v any) bool {
		name := k.(string)
		fs := v.(*feedStat)
		feedData[name] = map[string]int64{
			"reads": atomic.LoadInt64(&fs.reads),
			"bytes": atomic.LoadInt64(&fs.bytes),
		}
		return true
	})

	cpuPct := 0.0
	if len(cpuPercent) > 0 {
		cpuPct = cpuPercent[0]
	}

	bytesSent := uint64(0)
	bytesRecv := uint64(0)
	if len(netStats) > 0 {
		bytesSent = netStats[0].BytesSent
		bytesRecv = netStats[0].BytesRecv
	}

	fields := Fields{
		"market_reads":   atomic.LoadInt64(&marketReads),
		"book_reads":     atomic.LoadInt64(&bookReads),
		"trade_reads":    atomic.LoadInt64(&tradeReads),
		"stale_drops":    atomic.LoadInt64(&staleDrops),
		"warns":          countMap(&warnCounts),
		"errors":         countMap(&errorCounts),
		"feeds":          feedData,
		"goroutines":     runtime.NumGoroutine(),
		"cpu_percent":    cpuPct,
		"memory_mb":      int64(memStats.Used) / 1024 / 1024,
		"disk_mb":        int64(diskStats.Used) / 1024 / 1024,
		"net_bytes_sent": int64(bytesSent),
		"net_bytes_recv": int64(bytesRecv),
	}

	log.WithComponent("report").WithFields(fields).Info("runtime report")

	var data []cwtypes.MetricDatum
	data = append(data,
		cwtypes.MetricDatum{MetricName: aws.String("MV-CPUPercent"), Unit: cwtypes.StandardUnitPercent, Value: aws.Float64(cpuPct)},
		cwtypes.MetricDatum{MetricName: aws.String("MV-MemoryMB"), Unit: cwtypes.StandardUnitMegabytes, Value: aws.Float64(float64(memStats.Used) / 1024 / 1024)},
		cwtypes.MetricDatum{MetricName: aws.String("MV-MarketReads"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&marketReads)))},
		cwtypes.MetricDatum{MetricName: aws.String("MV-BookReads"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&bookReads)))},
		cwtypes.MetricDatum{MetricName: aws.String("MV-TradeReads"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&tradeReads)))},
		cwtypes.MetricDatum{MetricName: aws.String("MV-StaleDrops"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(atomic.LoadInt64(&staleDrops)))},
		cwtypes.MetricDatum{MetricName: aws.String("MV-NetBytesSent"), Unit: cwtypes.StandardUnitBytes, Value: aws.Float64(float64(bytesSent))},
		cwtypes.MetricDatum{MetricName: aws.String("MV-NetBytesRecv"), Unit: cwtypes.StandardUnitBytes, Value: aws.Float64(float64(bytesRecv))},
	)

	for name, stats := range feedData {
		data = append(data,
			cwtypes.MetricDatum{
				MetricName: aws.String("MV-FeedReads"),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{{Name: aws.String("Feed"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(stats["reads"])),
			},
			cwtypes.MetricDatum{
				MetricName: aws.String("MV-FeedBytes"),
				Unit:       cwtypes.StandardUnitBytes,
				Dimensions: []cwtypes.Dimension{{Name: aws.String("Feed"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(stats["bytes"])),
			},
		)
	}

	publishMetrics(ctx, data)
}
