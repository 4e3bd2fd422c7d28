package runner

// mailbox is an unbounded multi-producer, single-consumer FIFO. Sends never
// block producers for longer than the pump takes to buffer the command, and
// delivery order matches arrival order. Commands still buffered when done
// closes are dropped; by then the session is shutting down.
type mailbox struct {
	in   chan Command
	out  chan Command
	done <-chan struct{}
}

func newMailbox(done <-chan struct{}) *mailbox {
	m := &mailbox{
		in:   make(chan Command),
		out:  make(chan Command),
		done: done,
	}
	go m.pump()
	return m
}

// Send queues a command. Safe for any number of concurrent producers.
func (m *mailbox) Send(cmd Command) {
	select {
	case m.in <- cmd:
	case <-m.done:
	}
}

// Receive returns the channel the single consumer reads from.
func (m *mailbox) Receive() <-chan Command {
	return m.out
}

func (m *mailbox) pump() {
	var buf []Command
	for {
		if len(buf) == 0 {
			select {
			case cmd := <-m.in:
				buf = append(buf, cmd)
			case <-m.done:
				return
			}
		}
		select {
		case cmd := <-m.in:
			buf = append(buf, cmd)
		case m.out <- buf[0]:
			buf = buf[1:]
		case <-m.done:
			return
		}
	}
}
