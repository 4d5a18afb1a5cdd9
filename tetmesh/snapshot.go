// File: snapshot.go
// Role: Snapshot/Restore, a compact binary encoding of every live site
// and tet, snappy-compressed, mirroring trimesh/snapshot.go.
package tetmesh

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/dhale/delaunay/meshkit"
)

const snapshotMagic uint32 = 0x54544d31 // "TTM1"

// Snapshot encodes the mesh's current sites and tets into a single
// snappy-compressed blob. Payloads are not included — callers that need
// them round-tripped should keep their own ID-keyed store.
func (m *TetMesh) Snapshot() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, snapshotMagic)
	_ = binary.Write(&buf, binary.LittleEndian, m.version)

	var sites []*Site
	m.root2(func(s *Site) bool { sites = append(sites, s); return true })
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(sites)))
	idToOrdinal := make(map[uint64]uint32, len(sites))
	for i, s := range sites {
		idToOrdinal[s.id] = uint32(i)
		_ = binary.Write(&buf, binary.LittleEndian, s.id)
		_ = binary.Write(&buf, binary.LittleEndian, s.x)
		_ = binary.Write(&buf, binary.LittleEndian, s.y)
		_ = binary.Write(&buf, binary.LittleEndian, s.z)
		inMesh := byte(0)
		if s.InMesh() {
			inMesh = 1
		}
		buf.WriteByte(inMesh)
	}

	var tetIdxs []int32
	m.arena.Each(func(idx int32) { tetIdxs = append(tetIdxs, idx) })
	ordinalOf := make(map[int32]uint32, len(tetIdxs))
	for i, idx := range tetIdxs {
		ordinalOf[idx] = uint32(i)
	}
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(tetIdxs)))
	for _, idx := range tetIdxs {
		t := m.arena.Get(idx)
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.A.id])
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.B.id])
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.C.id])
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.D.id])
		for _, n := range []int32{t.NA, t.NB, t.NC, t.ND} {
			if n == meshkit.NoIndex {
				_ = binary.Write(&buf, binary.LittleEndian, int32(-1))
			} else {
				_ = binary.Write(&buf, binary.LittleEndian, int32(ordinalOf[n]))
			}
		}
	}

	return snappy.Encode(nil, buf.Bytes()), nil
}

// Restore replaces the mesh's contents with a previously captured
// Snapshot. Site payloads are left nil; callers that need them should
// re-attach via PropertyMap, keyed by the restored sites' IDs, which are
// the IDs recorded in the snapshot.
func (m *TetMesh) Restore(blob []byte) error {
	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return errors.Wrap(err, "tetmesh: snapshot decompression failed")
	}
	r := bytes.NewReader(raw)

	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return errors.Wrap(err, "tetmesh: truncated snapshot header")
	}
	if magic != snapshotMagic {
		return fmt.Errorf("tetmesh: bad snapshot magic %#x", magic)
	}
	var version uint64
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return errors.Wrap(err, "tetmesh: truncated snapshot version")
	}

	var siteCount uint32
	if err := binary.Read(r, binary.LittleEndian, &siteCount); err != nil {
		return errors.Wrap(err, "tetmesh: truncated site count")
	}
	sites := make([]*Site, siteCount)
	for i := range sites {
		var id uint64
		var x, y, z float64
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return errors.Wrap(err, "tetmesh: truncated site record")
		}
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return errors.Wrap(err, "tetmesh: truncated site record")
		}
		if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
			return errors.Wrap(err, "tetmesh: truncated site record")
		}
		if err := binary.Read(r, binary.LittleEndian, &z); err != nil {
			return errors.Wrap(err, "tetmesh: truncated site record")
		}
		if _, err := r.ReadByte(); err != nil {
			return errors.Wrap(err, "tetmesh: truncated site record")
		}
		sites[i] = &Site{id: id, x: x, y: y, z: z, witness: meshkit.NoIndex}
	}

	var tetCount uint32
	if err := binary.Read(r, binary.LittleEndian, &tetCount); err != nil {
		return errors.Wrap(err, "tetmesh: truncated tet count")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.arena = meshkit.NewArena[Tet](m.cfg.RecyclerCap)
	m.root = nil
	m.siteCount = 0
	m.rootTet = meshkit.NoIndex
	m.pending = nil
	for _, s := range sites {
		m.linkSite(s)
		m.siteCount++
	}

	for i := uint32(0); i < tetCount; i++ {
		var aOrd, bOrd, cOrd, dOrd uint32
		var na, nb, nc, nd int32
		for _, dst := range []*uint32{&aOrd, &bOrd, &cOrd, &dOrd} {
			if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
				return errors.Wrap(err, "tetmesh: truncated tet record")
			}
		}
		for _, dst := range []*int32{&na, &nb, &nc, &nd} {
			if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
				return errors.Wrap(err, "tetmesh: truncated tet record")
			}
		}
		idx := m.arena.Alloc()
		t := m.arena.Get(idx)
		t.A, t.B, t.C, t.D = sites[aOrd], sites[bOrd], sites[cOrd], sites[dOrd]
		t.NA, t.NB, t.NC, t.ND = remapNeighbor(na), remapNeighbor(nb), remapNeighbor(nc), remapNeighbor(nd)
		if i == 0 {
			m.rootTet = idx
		}
		t.A.witness, t.B.witness, t.C.witness, t.D.witness = idx, idx, idx, idx
	}

	m.version = version
	m.maintainSample()
	return nil
}

func remapNeighbor(ord int32) int32 {
	if ord < 0 {
		return meshkit.NoIndex
	}
	return ord
}
