/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core wires the sampling, retention and alerting pipeline.
package core

import (
	"context"

	"github.com/mfreeman451/pgradar/pkg/alerts"
	"github.com/mfreeman451/pgradar/pkg/sampler"
)

// InstanceProbe samples instances and describes them for alert enrichment.
type InstanceProbe interface {
	sampler.Probe
	alerts.OverviewProvider
	Close()
}

// Service is the lifecycle surface of the pgradar core.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
