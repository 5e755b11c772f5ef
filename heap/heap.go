// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements an indexed binary min-heap keyed by float64 with
// stable handles: once an element is inserted, its handle remains valid
// across any number of UpdateKey calls and across heap growth. It is built
// on container/heap, the idiom gonum's own graph/path package uses for its
// Dijkstra priority queue, plus a pos-per-node handle layer container/heap
// alone doesn't provide.
package heap

import "container/heap"

// Handle identifies a previously inserted element for later key updates.
// Its zero value is not a valid handle.
type Handle struct {
	node *node
}

type node struct {
	key  float64
	info int
	pos  int // current slot in the heap array
}

// nodeHeap adapts []*node to container/heap.Interface, keeping each node's
// pos field in sync with its slot so a Handle can locate its node for
// heap.Fix after an arbitrary external key change.
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.pos = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	*h = old[:last]
	return n
}

// Heap is a binary min-heap over (key, info) pairs addressed by stable
// Handles.
type Heap struct {
	nodes nodeHeap
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{}
}

// Len returns the number of elements in the heap.
func (h *Heap) Len() int { return h.nodes.Len() }

// Put inserts (key, info) and returns a handle to it.
func (h *Heap) Put(key float64, info int) Handle {
	n := &node{key: key, info: info}
	heap.Push(&h.nodes, n)
	return Handle{node: n}
}

// PeekKey returns the minimum key in the heap. It panics if the heap is
// empty.
func (h *Heap) PeekKey() float64 { return h.nodes[0].key }

// PeekInfo returns the info field of the minimum-key element. It panics if
// the heap is empty.
func (h *Heap) PeekInfo() int { return h.nodes[0].info }

// UpdateKey changes the key of the element identified by hn, re-heapifying
// as needed. No-op if the key does not change.
func (h *Heap) UpdateKey(hn Handle, newKey float64) {
	n := hn.node
	if n.key == newKey {
		return
	}
	n.key = newKey
	heap.Fix(&h.nodes, n.pos)
}

// UpdateNode changes both the key and info of the element identified by hn.
func (h *Heap) UpdateNode(hn Handle, newKey float64, newInfo int) {
	hn.node.info = newInfo
	h.UpdateKey(hn, newKey)
}
