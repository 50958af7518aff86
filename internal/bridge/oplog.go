package bridge

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

const maxLogPage = 1000

// OperationLog returns up to limit retained entries with Seq greater than afterSeq.
// A non-positive limit, or one above the page size, selects the page size.
func (b *Bridge) OperationLog(afterSeq uint64, limit int) []model.OperationLogEntry {
	if limit <= 0 || limit > maxLogPage {
		limit = maxLogPage
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	log := b.st.log
	start := sort.Search(len(log), func(i int) bool { return log[i].Seq > afterSeq })
	end := min(start+limit, len(log))
	return append([]model.OperationLogEntry(nil), log[start:end]...)
}

// LastSeq returns the sequence number of the newest entry, or zero for an empty log.
func (b *Bridge) LastSeq() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.st.nextLogSeq - 1
}

// AdvanceLogSeq moves the next sequence number past seq, so entries committed from now
// on never reuse a number already held by an external store. It reports whether the
// sequence moved.
func (b *Bridge) AdvanceLogSeq(seq uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.st.nextLogSeq > seq {
		return false
	}
	b.st.nextLogSeq = seq + 1
	return true
}
