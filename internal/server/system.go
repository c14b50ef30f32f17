package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// StartTime is recorded at process start for uptime reporting.
var StartTime = time.Now()

// healthHandler collects and returns system-level metrics alongside the
// catalog size, so operators can see both process health and data readiness.
func (s *Server) healthHandler(c echo.Context) error {
	// 1. Memory Stats
	v, _ := mem.VirtualMemory()
	if v == nil {
		v = &mem.VirtualMemoryStat{}
	}

	// 2. CPU Usage (instant sample, non-blocking)
	cpuPercent, _ := cpu.Percent(0, false)
	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	// 3. Disk Stats (Root partition)
	d, _ := disk.Usage("/")
	if d == nil {
		d = &disk.UsageStat{}
	}

	// 4. Host/Runtime Info
	hInfo, _ := host.Info()
	if hInfo == nil {
		hInfo = &host.InfoStat{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "online",
		"catalog_size": s.catalog.Len(),
		"runtime": map[string]interface{}{
			"uptime":     time.Since(StartTime).String(),
			"start_time": StartTime.Format(time.RFC3339),
			"os":         hInfo.OS,
			"platform":   hInfo.Platform,
			"hostname":   hInfo.Hostname,
		},
		"cpu": map[string]interface{}{
			"usage_percent": fmt.Sprintf("%.2f%%", cpuUsage),
			"cores":         hInfo.Procs,
		},
		"memory": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		},
		"disk": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
		},
	})
}
