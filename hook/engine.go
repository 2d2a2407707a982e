// Package hook implements inline function hooking: given a target
// address and a detour address, it rewrites the target's prologue to
// jump to the detour and hands back a trampoline that still executes
// the original prologue before resuming the target.
//
// Engine is the primary API (a caller-owned value, safe for concurrent
// use on its own); global.go layers a package-level singleton over it
// for callers that want source-compatible single-instance behavior
// without constructing an Engine themselves.
package hook

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/haxo-games/TrampHook/hook/internal/logging"
	"github.com/haxo-games/TrampHook/internal/arch"
	"github.com/haxo-games/TrampHook/internal/vmem"
)

// maxPrologueProbe bounds how many bytes of a target are read at once
// while measuring its prologue; no valid x86 instruction exceeds 15
// bytes, so this covers a single decode plus headroom.
const maxPrologueProbe = 15

// Hook is an installed hook's public record: enough for a caller to
// inspect what was overwritten and where the trampoline lives.
type Hook struct {
	Target      uintptr
	Trampoline  uintptr
	PrologueLen int
}

// Engine owns a registry of installed hooks and serializes access to it.
// The zero value is not usable; construct one with NewEngine.
type Engine struct {
	mu       sync.Mutex
	registry map[uintptr]*hookRecord
	log      *logrus.Entry
}

// hookRecord is the engine-internal bookkeeping entry; Hook is its
// caller-facing projection.
type hookRecord struct {
	trampoline  vmem.Region
	prologueLen int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger overrides the engine's logger, e.g. to attach caller-chosen
// fields or route output elsewhere.
func WithLogger(l *logrus.Entry) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns a ready-to-use Engine with an empty registry.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry: make(map[uintptr]*hookRecord),
		log:      logging.NamedLogger("hook", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Install measures target's prologue, builds an executable trampoline
// holding a copy of it followed by a jump back to target just past the
// overwritten bytes, then patches target to jump to detour. It returns
// the trampoline's address.
//
// Install fails, leaving target and the registry untouched, when target
// or detour is nil, target is already hooked, an opcode in the prologue
// cannot be decoded, or trampoline allocation fails.
func (e *Engine) Install(target, detour uintptr) (uintptr, error) {
	if target == 0 {
		return 0, ErrNilTarget
	}
	if detour == 0 {
		return 0, ErrNilDetour
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.registry[target]; exists {
		e.log.WithField("target", target).Warn("target already hooked")
		return 0, ErrAlreadyHooked
	}

	prologueLen, err := measurePrologue(target)
	if err != nil {
		e.log.WithField("target", target).WithError(err).Warn("failed to measure prologue")
		return 0, err
	}

	trampolineSize := prologueLen + platformMinimumHookSize
	region, err := vmem.Alloc(trampolineSize)
	if err != nil {
		e.log.WithError(err).Warn("trampoline allocation failed")
		return 0, ErrAllocationFailed
	}

	original := vmem.Read(target, prologueLen)
	vmem.Write(region.Addr, original)

	jumpBackAt := region.Addr + uintptr(prologueLen)
	jumpBack := buildJumpStub(jumpBackAt, target+uintptr(prologueLen))
	vmem.Write(jumpBackAt, jumpBack)

	if err := e.patchTarget(target, detour, prologueLen); err != nil {
		vmem.Free(region)
		return 0, err
	}

	e.registry[target] = &hookRecord{trampoline: region, prologueLen: prologueLen}
	e.log.WithFields(logrus.Fields{"target": target, "detour": detour, "trampoline": region.Addr}).Debug("hook installed")

	return region.Addr, nil
}

// patchTarget overwrites the first prologueLen bytes at target with NOPs
// followed by a single jump-to-detour stub. OQ1's double-write bug (the
// original writes its JMP RAX twice - once correctly at target+10, once
// erroneously at the trampoline's jump-back) does not reproduce here:
// the trampoline's jump-back and the target's detour jump are two
// distinct buildJumpStub calls against two distinct addresses, each
// written exactly once.
func (e *Engine) patchTarget(target, detour uintptr, prologueLen int) error {
	oldProt, err := vmem.Protect(target, prologueLen, vmem.ProtExecuteReadWrite)
	if err != nil {
		e.log.WithError(err).Warn("failed to make target writable")
		return ErrProtectFailed
	}

	nops := make([]byte, prologueLen)
	for i := range nops {
		nops[i] = 0x90
	}
	vmem.Write(target, nops)

	detourJump := buildJumpStub(target, detour)
	vmem.Write(target, detourJump)

	if _, err := vmem.Protect(target, prologueLen, oldProt); err != nil {
		e.log.WithError(err).Warn("failed to restore target protection")
	}

	return nil
}

// measurePrologue accumulates instruction lengths at target until the
// total reaches platformMinimumHookSize, per spec's install algorithm
// step 1.
func measurePrologue(target uintptr) (int, error) {
	size := 0
	for size < platformMinimumHookSize {
		probe := vmem.Read(target+uintptr(size), maxPrologueProbe)
		length, err := arch.InstructionLength(probe, mode64)
		if err != nil {
			return 0, ErrUndecodableOpcode
		}
		size += length
	}
	return size, nil
}

// Uninstall restores target's original bytes and releases its
// trampoline. It is a silent no-op if target is nil or not currently
// hooked, matching spec's "return silently" behavior.
func (e *Engine) Uninstall(target uintptr) error {
	if target == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.registry[target]
	if !ok {
		return nil
	}

	e.restore(target, record)
	delete(e.registry, target)
	return nil
}

// UninstallAll restores and releases every currently installed hook,
// best-effort: a failure restoring one hook never skips the rest.
func (e *Engine) UninstallAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for target, record := range e.registry {
		e.restore(target, record)
		delete(e.registry, target)
	}
}

func (e *Engine) restore(target uintptr, record *hookRecord) {
	oldProt, err := vmem.Protect(target, record.prologueLen, vmem.ProtExecuteReadWrite)
	if err != nil {
		e.log.WithField("target", target).WithError(err).Warn("failed to make target writable for uninstall")
	}

	original := vmem.Read(record.trampoline.Addr, record.prologueLen)
	vmem.Write(target, original)

	if err == nil {
		if _, err := vmem.Protect(target, record.prologueLen, oldProt); err != nil {
			e.log.WithField("target", target).WithError(err).Warn("failed to restore target protection")
		}
	}

	if err := vmem.Free(record.trampoline); err != nil {
		e.log.WithField("target", target).WithError(err).Warn("failed to free trampoline")
	}

	e.log.WithField("target", target).Debug("hook uninstalled")
}

// Installed reports whether target currently has a hook registered.
func (e *Engine) Installed(target uintptr) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.registry[target]
	return ok
}

// Lookup returns the public record for target's hook, if any.
func (e *Engine) Lookup(target uintptr) (Hook, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.registry[target]
	if !ok {
		return Hook{}, false
	}
	return Hook{
		Target:      target,
		Trampoline:  record.trampoline.Addr,
		PrologueLen: record.prologueLen,
	}, true
}

// Count returns the number of currently installed hooks.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.registry)
}
