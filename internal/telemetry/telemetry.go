// Package telemetry installs the global OpenTelemetry MeterProvider that
// the demo hooks and the timing harness record into.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Supported values of the metrics exporter setting.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// ErrUnknownExporter is returned for an unsupported exporter name.
var ErrUnknownExporter = errors.New("unknown metrics exporter")

// InitMetrics installs a global MeterProvider for exporter. "stdout"
// writes JSON metrics to w when the provider is flushed or shut down;
// "none" (or "") leaves the global no-op provider in place.
// The returned shutdown must be called to export the final readings.
func InitMetrics(_ context.Context, exporter string, w io.Writer) (shutdown func(context.Context) error, err error) {
	switch exporter {
	case "", ExporterNone:
		return func(context.Context) error { return nil }, nil
	case ExporterStdout:
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}
		res := resource.NewWithAttributes("", attribute.String("service.name", "lambdabasics"))
		mp := metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(exp)),
		)
		otel.SetMeterProvider(mp)
		return mp.Shutdown, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, exporter)
	}
}
