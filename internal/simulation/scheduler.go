package simulation

import (
	"container/heap"
	"time"
)

// task - отложенное обновление, привязанное к машине
type task struct {
	at     time.Duration
	seq    uint64
	unitID string
	run    func()
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler - виртуальные часы с очередью отложенных задач.
// Не потокобезопасен: им владеет одна горутина (Runner) или тест.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now возвращает текущее виртуальное время
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Schedule ставит задачу через delay от текущего виртуального времени
func (s *Scheduler) Schedule(delay time.Duration, unitID string, run func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, &task{
		at:     s.now + delay,
		seq:    s.seq,
		unitID: unitID,
		run:    run,
	})
}

// CancelUnit удаляет все ожидающие задачи машины и возвращает их число
func (s *Scheduler) CancelUnit(unitID string) int {
	kept := s.queue[:0]
	removed := 0
	for _, t := range s.queue {
		if t.unitID == unitID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = kept
	heap.Init(&s.queue)
	return removed
}

// Clear удаляет все ожидающие задачи
func (s *Scheduler) Clear() int {
	n := len(s.queue)
	s.queue = nil
	return n
}

// Pending возвращает число ожидающих задач
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// pendingFor возвращает число ожидающих задач машины
func (s *Scheduler) pendingFor(unitID string) int {
	n := 0
	for _, t := range s.queue {
		if t.unitID == unitID {
			n++
		}
	}
	return n
}

// Advance сдвигает часы на d и выполняет наступившие задачи по порядку.
// Задачи, поставленные во время выполнения и попадающие в окно, тоже выполняются.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	ran := 0
	for len(s.queue) > 0 && s.queue[0].at <= target {
		t := heap.Pop(&s.queue).(*task)
		s.now = t.at
		t.run()
		ran++
	}
	s.now = target
	return ran
}
