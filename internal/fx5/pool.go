package fx5

// Pool hands out one Client per controller endpoint.

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Pool maps host strings to clients. At most one client exists per distinct
// host for the lifetime of the pool; all controller traffic for a host
// funnels through that client's lock.
type Pool struct {
	log *zap.Logger

	mu    sync.Mutex
	conns map[string]*Client
}

// NewPool creates an empty pool. A nil logger disables logging.
func NewPool(log *zap.Logger) *Pool {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{log: log, conns: make(map[string]*Client)}
}

// Get returns the client for host, creating and registering it on first
// use. Concurrent first accesses for the same host yield the same client.
func (p *Pool) Get(host string) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.conns[host]; ok {
		return c, nil
	}
	c, err := NewClient(host, p.log)
	if err != nil {
		return nil, err
	}
	p.conns[host] = c
	p.log.Debug("registered client", zap.String("host", host))
	return c, nil
}

// CloseAll closes every registered client. The clients stay registered and
// reconnect on their next exchange.
func (p *Pool) CloseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.conns {
		c.Close()
	}
}

// Hosts returns the registered hosts in sorted order.
func (p *Pool) Hosts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	hosts := make([]string, 0, len(p.conns))
	for host := range p.conns {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}
