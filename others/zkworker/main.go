// zkworker demonstrates leasing a worker id from ZooKeeper instead of relying
// on auto-derivation: each process registers an ephemeral sequential znode and
// uses the assigned sequence number (mod 1024) as its worker id. The lease
// lives exactly as long as the session, so a crashed process frees its id
// automatically. As with dbworker, the generator itself stays
// coordination-free after startup.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/lab2439/snowid"
)

const (
	zkRootPath    = "/snowid"
	zkWorkersPath = "/snowid/workers"
)

// WorkerInfo is the payload stored on each worker's znode.
type WorkerInfo struct {
	WorkerID   int64 `json:"worker_id"`
	LastTime   int64 `json:"last_time"`   // last heartbeat, Unix ms
	CreateTime int64 `json:"create_time"` // registration time, Unix ms
}

// Registry holds the ZooKeeper session and this process's registration.
type Registry struct {
	conn     *zk.Conn
	nodePath string
	workerID int64
}

// NewRegistry connects to ZooKeeper and registers this process, returning a
// registry holding the leased worker id.
func NewRegistry(servers []string) (*Registry, error) {
	conn, _, err := zk.Connect(servers, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect zk: %w", err)
	}

	r := &Registry{conn: conn}
	if err := r.register(); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

// register creates the base paths and an ephemeral sequential node whose
// sequence number becomes this process's worker id.
func (r *Registry) register() error {
	for _, path := range []string{zkRootPath, zkWorkersPath} {
		exists, _, err := r.conn.Exists(path)
		if err != nil {
			return fmt.Errorf("check path %s: %w", path, err)
		}
		if !exists {
			_, err = r.conn.Create(path, nil, 0, zk.WorldACL(zk.PermAll))
			if err != nil && err != zk.ErrNodeExists {
				return fmt.Errorf("create path %s: %w", path, err)
			}
		}
	}

	now := time.Now().UnixMilli()
	data, _ := json.Marshal(WorkerInfo{LastTime: now, CreateTime: now})

	nodePath, err := r.conn.Create(zkWorkersPath+"/worker-", data,
		zk.FlagEphemeral|zk.FlagSequence, zk.WorldACL(zk.PermAll))
	if err != nil {
		return fmt.Errorf("register worker node: %w", err)
	}

	seq, err := sequenceFromPath(nodePath)
	if err != nil {
		return err
	}

	r.nodePath = nodePath
	r.workerID = seq % (snowid.MaxWorkerID + 1)

	// Rewrite the node with the resolved worker id for observability.
	data, _ = json.Marshal(WorkerInfo{WorkerID: r.workerID, LastTime: now, CreateTime: now})
	if _, err := r.conn.Set(nodePath, data, -1); err != nil {
		return fmt.Errorf("store worker info: %w", err)
	}

	log.Printf("registered %s, leased worker id %d", nodePath, r.workerID)
	return nil
}

// sequenceFromPath extracts the sequence number ZooKeeper appended to the
// ephemeral node name, e.g. /snowid/workers/worker-0000000007 -> 7.
func sequenceFromPath(path string) (int64, error) {
	idx := strings.LastIndex(path, "-")
	if idx < 0 || idx == len(path)-1 {
		return 0, fmt.Errorf("unexpected znode path %q", path)
	}
	seq, err := strconv.ParseInt(path[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse sequence from %q: %w", path, err)
	}
	return seq, nil
}

// heartbeat periodically refreshes the node payload so operators can spot
// stale registrations. Transient ZooKeeper errors are ignored; the ephemeral
// node itself is kept alive by the session, not by these writes.
func (r *Registry) heartbeat() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		data, _ := json.Marshal(WorkerInfo{
			WorkerID: r.workerID,
			LastTime: time.Now().UnixMilli(),
		})
		r.conn.Set(r.nodePath, data, -1)
	}
}

func main() {
	// NOTE: This code requires a local ZooKeeper at localhost:2181 to run.
	// You can use Docker to start one for local testing:
	// docker run --name some-zookeeper -p 2181:2181 -d zookeeper
	registry, err := NewRegistry([]string{"127.0.0.1:2181"})
	if err != nil {
		log.Fatalf("failed to register with zookeeper: %v", err)
	}

	gen, err := snowid.NewGeneratorWithWorkerID(registry.workerID)
	if err != nil {
		log.Fatal(err)
	}

	go registry.heartbeat()

	log.Println("start generating IDs...")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				fmt.Println(gen.NextID())
			}
		}()
	}
	wg.Wait()
	log.Println("done.")
}
