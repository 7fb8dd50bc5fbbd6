package snowid

import (
	"math/rand"
	"net"
)

// deriveWorkerID resolves a worker id for this process. It prefers a
// hardware-address derived id so the id is stable across restarts on the same
// host, and falls back to a random id when no usable interface exists. Any
// enumeration failure is absorbed here; the caller always gets a valid id.
func deriveWorkerID() int64 {
	if id, err := workerIDFromMAC(); err == nil {
		return id
	}
	return randomWorkerID()
}

// workerIDFromMAC forms a 10-bit worker id from the hardware address of the
// first usable network interface on this host.
func workerIDFromMAC() (int64, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return 0, err
	}
	return workerIDFromInterfaces(ifaces)
}

// workerIDFromInterfaces derives a worker id from an interface list:
// (hw[4] & 0b11) << 8 | hw[5], the lowest 10 bits formed from the last two
// meaningful bytes of the MAC. Loopback interfaces and interfaces without a
// full 6-byte hardware address are skipped, which also drops most virtual
// interfaces.
func workerIDFromInterfaces(ifaces []net.Interface) (int64, error) {
	for _, ifi := range ifaces {
		if ifi.Flags&net.FlagLoopback != 0 {
			continue
		}
		hw := ifi.HardwareAddr
		if len(hw) < 6 {
			continue
		}
		return int64(hw[4]&0b11)<<8 | int64(hw[5]), nil
	}
	return 0, errNoHardwareAddress
}

// randomWorkerID returns a uniformly random worker id in [0, MaxWorkerID].
func randomWorkerID() int64 {
	return rand.Int63n(MaxWorkerID + 1)
}
