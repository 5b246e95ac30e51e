package appconfig

import (
	"fmt"
	"strings"
)

const (
	TracingExporterJaeger = "jaeger"
	TracingExporterOTLP   = "otlp"
	TracingExporterStdout = "stdout"
)

type TracingExporters []string

func (e *TracingExporters) Decode(value string) error {
	*e = TracingExporters{}
	for _, v := range strings.Split(value, ",") {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		switch v {
		case TracingExporterJaeger, TracingExporterOTLP, TracingExporterStdout:
			*e = append(*e, v)
		default:
			return fmt.Errorf("invalid tracing exporter: expect one of jaeger, otlp, stdout, but got: %s", v)
		}
	}
	return nil
}
