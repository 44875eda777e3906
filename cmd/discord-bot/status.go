package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aleister1102/mailprobe/internal/models"
	"github.com/aleister1102/mailprobe/internal/progress"
)

// ServiceMonitor reports process health for the /status command.
type ServiceMonitor struct {
	startedAt time.Time
}

// ServiceStatus is a point-in-time snapshot of process health.
type ServiceStatus struct {
	Uptime           time.Duration
	AllocMB          int64
	Goroutines       int
	SystemMemPercent float64
	CPUPercent       float64
}

// NewServiceMonitor creates a monitor anchored at process start.
func NewServiceMonitor() (*ServiceMonitor, error) {
	return &ServiceMonitor{startedAt: time.Now()}, nil
}

// Status collects current resource usage. System-level stats are best
// effort and stay zero when unavailable.
func (sm *ServiceMonitor) Status() ServiceStatus {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	status := ServiceStatus{
		Uptime:     time.Since(sm.startedAt),
		AllocMB:    int64(m.Alloc / 1024 / 1024),
		Goroutines: runtime.NumGoroutine(),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		status.SystemMemPercent = vmStat.UsedPercent
	}
	if cpuPercents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		status.CPUPercent = cpuPercents[0]
	}

	return status
}

// handleStatus replies with process health and the current run snapshot.
func (b *Bot) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	status := b.serviceMonitor.Status()
	info := b.tracker.Info()

	var sb strings.Builder
	sb.WriteString("🤖 **Bot status**\n")
	sb.WriteString(fmt.Sprintf("Uptime: `%s`\n", formatDuration(status.Uptime)))
	sb.WriteString(fmt.Sprintf("Memory: `%d MB` (system %.0f%%)\n", status.AllocMB, status.SystemMemPercent))
	sb.WriteString(fmt.Sprintf("CPU: `%.1f%%`\n", status.CPUPercent))
	sb.WriteString(fmt.Sprintf("Goroutines: `%d`\n\n", status.Goroutines))
	sb.WriteString(renderRunInfo(info))

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: sb.String()},
	}); err != nil {
		b.logger.Error().Err(err).Msg("Failed to respond to status command")
	}
}

// renderRunInfo renders the tracker snapshot for the /status reply.
func renderRunInfo(info progress.Info) string {
	switch info.Status {
	case progress.StatusIdle:
		return "📋 **Current run:** none"
	case progress.StatusRunning:
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("📋 **Current run:** %d/%d (%d%%)\n", info.Current, info.Total, info.Percent()))
		if info.LastAddress != "" {
			sb.WriteString(fmt.Sprintf("Last: %s `%s`\n", statusEmoji[info.LastLabel], info.LastAddress))
		}
		if info.EstimatedETA > 0 {
			sb.WriteString(fmt.Sprintf("ETA: `%s`", formatDuration(info.EstimatedETA)))
		}
		return sb.String()
	default:
		return fmt.Sprintf("📋 **Last run:** %s - %d/%d (🔴 %d / 🟢 %d / 🟡 %d / ⚠️ %d)",
			strings.ToLower(string(info.Status)),
			info.Current, info.Total,
			info.Counts[models.LabelRegistered],
			info.Counts[models.LabelAvailable],
			info.Counts[models.LabelInvalid],
			info.Counts[models.LabelError])
	}
}

// formatDuration renders a duration as 1h2m3s without sub-second noise.
func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
