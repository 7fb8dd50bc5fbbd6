// Package snowid provides a lock-free generator of cluster-wide unique,
// monotonically trending 64-bit integer identifiers, suitable for primary
// keys and transaction ids in distributed systems.
//
// Layout of a generated ID (64 bits, MSB to LSB):
//
//	|  1 bit | always 0, keeps IDs positive for signed 64-bit consumers |
//	| 10 bit | worker id, range [0, 1023]                               |
//	| 41 bit | timestamp, milliseconds since 2020-05-03T00:00:00Z       |
//	| 12 bit | sequence, wraps per encoded millisecond                  |
//
// Unlike classic snowflake variants, the worker id occupies the high bits
// while timestamp and sequence are packed together into the low 53 bits of a
// single atomic counter. Every call advances that counter by exactly one, so
// a sequence overflow carries into the timestamp bits through plain integer
// addition. The wall clock is read once at construction to seed the counter;
// afterwards it is consulted on each call only to decide whether to pause
// briefly when IDs are drawn faster than 4096 per millisecond. Clock
// adjustments after startup therefore never move generated IDs backwards,
// though the encoded timestamp can drift from true wall-clock time under
// sustained bursts.
//
// Basic Usage:
//
//	// Generate an ID with the package-level generator
//	id := snowid.NextID()
//	fmt.Println(id.Int64())
//
//	// Decode the components
//	fmt.Println(id.WorkerID(), id.Time(), id.Sequence())
//
//	// Pin the worker id explicitly
//	gen, err := snowid.NewGeneratorWithWorkerID(42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id = gen.NextID()
//
// Worker Identity:
//
// When no worker id is supplied, the generator derives one from the hardware
// address of the first non-loopback network interface (two bytes of the MAC,
// giving 10 bits), falling back to a uniformly random worker id when no
// usable interface exists. Two independently started processes can therefore
// end up with the same worker id; the package deliberately has no registry,
// lease or heartbeat to prevent this. Deployments that need a hard
// cross-process uniqueness guarantee must assign worker ids externally (see
// others/dbworker and others/zkworker for two ways to do that).
//
// Thread Safety:
//
// All operations are safe for concurrent use without additional
// synchronization. NextID never fails and takes no locks; the only way it
// blocks is a short fixed sleep under sustained bursts above the per-worker
// sequence capacity.
package snowid
