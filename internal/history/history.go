package history

import (
	"bufio"
	"os"
	"sync"
)

const defaultMaxItems = 1000

// History is the shell's command history: an in-memory list capped at
// maxItems, mirrored to a file so readline can share it across sessions.
type History struct {
	items    []string
	file     string
	maxItems int
	mu       sync.Mutex
}

func New(file string) (*History, error) {
	h := &History{
		file:     file,
		maxItems: defaultMaxItems,
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *History) Add(item string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, item)
	if len(h.items) > h.maxItems {
		h.items = h.items[len(h.items)-h.maxItems:]
	}
}

func (h *History) GetAll() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string{}, h.items...)
}

// Save writes the history back to its file. Called once at shell teardown,
// not per command.
func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == "" {
		return nil
	}

	file, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, item := range h.items {
		if _, err := writer.WriteString(item + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func (h *History) load() error {
	if h.file == "" {
		return nil
	}

	file, err := os.Open(h.file)
	if err != nil {
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.items = append(h.items, scanner.Text())
	}
	if len(h.items) > h.maxItems {
		h.items = h.items[len(h.items)-h.maxItems:]
	}
	return scanner.Err()
}
