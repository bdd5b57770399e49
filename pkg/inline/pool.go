// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inline

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏊 Pool fans transform requests out to a fixed set of workers and streams
// results back in completion order. A Pool is single-use: one SubmitAll,
// then Release. Release is safe to call any number of times, from any
// point, including before or during consumption of the result stream.
type Pool struct {
	engine  Engine
	workers int

	quit        chan struct{}
	releaseOnce sync.Once
	wg          sync.WaitGroup
}

// 🏭 NewPool creates a pool running engine transforms on the given number
// of workers. Worker counts below one are raised to one.
func NewPool(engine Engine, workers int) (*Pool, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		engine:  engine,
		workers: workers,
		quit:    make(chan struct{}),
	}, nil
}

// 🏃 SubmitAll queues every request and returns the result stream. Results
// arrive as each transform finishes, not in submission order, and the
// channel closes once all workers drain. The stream applies backpressure:
// workers block once the small buffer fills, so later transforms only run
// as earlier results are consumed.
func (p *Pool) SubmitAll(ctx context.Context, reqs []Request) <-chan Result {
	results := make(chan Result, p.workers)

	select {
	case <-p.quit:
		// Released before any work was submitted
		close(results)
		return results
	default:
	}

	zerolog.Ctx(ctx).Debug().
		Int("requests", len(reqs)).
		Int("workers", p.workers).
		Msg("submitting transform requests")

	work := make(chan Request)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for req := range work {
				res := p.engine.Inline(ctx, req)
				select {
				case results <- res:
				case <-p.quit:
					return
				}
			}
		}()
	}

	// Feeder stops on cancellation or release; closing work lets idle
	// workers exit.
	go func() {
		defer close(work)
		for _, req := range reqs {
			select {
			case work <- req:
			case <-ctx.Done():
				return
			case <-p.quit:
				return
			}
		}
	}()

	go func() {
		p.wg.Wait()
		close(results)
	}()

	return results
}

// 🛑 Release stops feeding work, unblocks any worker stuck on an abandoned
// stream, and waits for the workers to exit. Idempotent.
func (p *Pool) Release() {
	p.releaseOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
