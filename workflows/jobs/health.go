/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jobs

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

type JobsHealthMetric string

const (
	JobsHealthMetricRunDurationSeconds JobsHealthMetric = "RUN_DURATION_SECONDS"
)

type JobsHealthOperator string

const (
	JobsHealthOperatorGreaterThan JobsHealthOperator = "GREATER_THAN"
)

// JobsHealthRule is one health threshold evaluated against a run.
type JobsHealthRule struct {
	workflows.Leaf

	Metric JobsHealthMetric
	Op     JobsHealthOperator
	Value  int64
}

func NewJobsHealthRule(metric JobsHealthMetric, op JobsHealthOperator, value int64) *JobsHealthRule {
	return &JobsHealthRule{Metric: metric, Op: op, Value: value}
}

func (r *JobsHealthRule) ToSDK() sdk.JobsHealthRule {
	return sdk.JobsHealthRule{
		Metric: sdk.JobsHealthMetric(r.Metric),
		Op:     sdk.JobsHealthOperator(r.Op),
		Value:  r.Value,
	}
}

// JobsHealthRules groups the health thresholds of a job or task.
type JobsHealthRules struct {
	Rules []*JobsHealthRule
}

func (h *JobsHealthRules) Children() []workflows.JobNode {
	var children []workflows.JobNode
	for _, r := range h.Rules {
		children = append(children, r)
	}
	return children
}

func (h *JobsHealthRules) ToSDK() *sdk.JobsHealthRules {
	rules := &sdk.JobsHealthRules{}
	for _, r := range h.Rules {
		rules.Rules = append(rules.Rules, r.ToSDK())
	}
	return rules
}
