package utils

import (
	"fmt"
	"time"

	"botgate/internal/dataType"
	"botgate/internal/geo"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const auditTimeFormat = "2006-01-02 15:04:05"

// AuditLogger writes the append-only audit trails: blocked and
// parameter-gate events to the bots log, successful visits to the visits
// log, operational lines to the service log. The zap cores emit the
// message only, so the files stay plain text.
type AuditLogger struct {
	bots    *zap.Logger
	visits  *zap.Logger
	service *zap.Logger
}

func NewAuditLogger(botsPath, visitsPath, servicePath string) *AuditLogger {
	encCfg := zapcore.EncoderConfig{MessageKey: "msg", LineEnding: zapcore.DefaultLineEnding}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	sink := func(path string) zapcore.WriteSyncer {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    20, // MB
			MaxBackups: 5,
		})
	}

	all := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return true })
	return &AuditLogger{
		bots:    zap.New(zapcore.NewCore(encoder, sink(botsPath), all)),
		visits:  zap.New(zapcore.NewCore(encoder, sink(visitsPath), all)),
		service: zap.New(zapcore.NewCore(encoder, sink(servicePath), all)),
	}
}

// LogBlock records a blocked visitor in the bots log.
func (a *AuditLogger) LogBlock(reqData dataType.VisitorRequest, reason string) {
	if a == nil {
		return
	}
	a.bots.Info(fmt.Sprintf("[%s] Bot blocked [%s] REASON: %s",
		time.Now().Format(auditTimeFormat), reqData.RemoteIP, reason))
}

// LogEvent records a non-block pipeline event in the bots log.
func (a *AuditLogger) LogEvent(msg string) {
	if a == nil {
		return
	}
	a.bots.Info(fmt.Sprintf("[%s] %s", time.Now().Format(auditTimeFormat), msg))
}

// LogVisit records a geo-enriched successful visit in the visits log.
func (a *AuditLogger) LogVisit(rec geo.Record) {
	if a == nil {
		return
	}
	a.visits.Info(fmt.Sprintf("[%s] Visit from [%s - %s - %s - %s]",
		time.Now().Format(auditTimeFormat), rec.Query, rec.CountryCode, rec.Country, rec.City))
}

// LogError records an operational failure in the service log.
func (a *AuditLogger) LogError(reqData dataType.VisitorRequest, msg, where string) {
	if a == nil {
		return
	}
	a.service.Error(serviceLine(reqData, msg, where))
}

// LogDebug records an operational detail in the service log.
func (a *AuditLogger) LogDebug(reqData dataType.VisitorRequest, msg, where string) {
	if a == nil {
		return
	}
	a.service.Info(serviceLine(reqData, msg, where))
}

func serviceLine(reqData dataType.VisitorRequest, msg, where string) string {
	return fmt.Sprintf("%s - - [%s] %s %s %s %s %s",
		reqData.RemoteIP,
		time.Now().Format("02/Jan/2006:15:04:05 -0700"),
		msg,
		reqData.Host,
		reqData.Uri,
		SummarizeUserAgent(reqData.UserAgent),
		where,
	)
}
