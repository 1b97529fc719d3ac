package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/aryasetya/storefront/internal/common/constants"
)

var Tracer = otel.Tracer(constants.AppStorefront)
