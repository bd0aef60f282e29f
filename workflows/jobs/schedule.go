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

type PauseStatus string

const (
	PauseStatusPaused   PauseStatus = "PAUSED"
	PauseStatusUnpaused PauseStatus = "UNPAUSED"
)

// CronSchedule triggers job runs on a Quartz cron expression.
type CronSchedule struct {
	workflows.Leaf

	QuartzCronExpression string
	TimezoneId           string
	PauseStatus          PauseStatus
}

func NewCronSchedule(quartzCronExpression, timezoneId string) *CronSchedule {
	return &CronSchedule{
		QuartzCronExpression: quartzCronExpression,
		TimezoneId:           timezoneId,
	}
}

func (s *CronSchedule) ToSDK() *sdk.CronSchedule {
	return &sdk.CronSchedule{
		QuartzCronExpression: s.QuartzCronExpression,
		TimezoneId:           s.TimezoneId,
		PauseStatus:          sdk.PauseStatus(s.PauseStatus),
	}
}

// Continuous keeps exactly one run of the job active at all times.
type Continuous struct {
	workflows.Leaf

	PauseStatus PauseStatus
}

func (c *Continuous) ToSDK() *sdk.Continuous {
	return &sdk.Continuous{PauseStatus: sdk.PauseStatus(c.PauseStatus)}
}
