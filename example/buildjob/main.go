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

package main

import (
	"fmt"

	jobkit "github.com/jobkit-dev/jobkit-go"
	"github.com/jobkit-dev/jobkit-go/render"
	"github.com/jobkit-dev/jobkit-go/workflows/clusters"
	"github.com/jobkit-dev/jobkit-go/workflows/jobs"
	"github.com/jobkit-dev/jobkit-go/workflows/sql"
)

func main() {
	// A two-task job: a notebook on a fresh cluster, then a SQL query on
	// a warehouse once the notebook succeeds.
	cluster := clusters.NewClusterSpec("13.3.x-scala2.12")
	cluster.NodeTypeId = "i3.xlarge"
	cluster.Autoscale = &clusters.AutoScale{MinWorkers: 1, MaxWorkers: 4}

	ingest := jobs.NewTask("ingest")
	ingest.NotebookTask = jobs.NewNotebookTask("/Jobs/ingest")
	ingest.NewCluster = cluster

	report := jobs.NewTask("report")
	report.DependsOn = []*jobs.TaskDependency{jobs.NewTaskDependency("ingest")}
	report.SqlTask = sql.NewSqlTask("w-123")
	report.SqlTask.Query = sql.NewSqlTaskQuery("q-456")

	job := jobs.NewJobSettings("nightly-report")
	job.Tasks = []*jobs.Task{ingest, report}
	job.Schedule = jobs.NewCronSchedule("0 0 2 * * ?", "UTC")

	fmt.Print(jobkit.Tree(job))

	payload, err := jobkit.RenderJob(job)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(payload))
	fmt.Println("tasks:", render.TaskKeys(payload))
	fmt.Println("warehouses:", render.WarehouseIds(payload))
}
