// File: snapshot.go
// Role: Snapshot/Restore (spec §6), a compact binary encoding of every
// live site and triangle, snappy-compressed the way the teacher's
// converterts package treats its own serialized blobs.
package trimesh

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/dhale/delaunay/meshkit"
)

const snapshotMagic uint32 = 0x54524d31 // "TRM1"

// Snapshot encodes the mesh's current sites and triangles into a single
// snappy-compressed blob. Payloads are not included — callers that need
// them round-tripped should keep their own ID-keyed store.
func (m *TriMesh) Snapshot() ([]byte, error) {
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
		inMesh := byte(0)
		if s.InMesh() {
			inMesh = 1
		}
		buf.WriteByte(inMesh)
	}

	var triIdxs []int32
	m.arena.Each(func(idx int32) { triIdxs = append(triIdxs, idx) })
	ordinalOf := make(map[int32]uint32, len(triIdxs))
	for i, idx := range triIdxs {
		ordinalOf[idx] = uint32(i)
	}
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(triIdxs)))
	for _, idx := range triIdxs {
		t := m.arena.Get(idx)
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.A.id])
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.B.id])
		_ = binary.Write(&buf, binary.LittleEndian, idToOrdinal[t.C.id])
		for _, n := range []int32{t.NA, t.NB, t.NC} {
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
func (m *TriMesh) Restore(blob []byte) error {
	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return errors.Wrap(err, "trimesh: snapshot decompression failed")
	}
	r := bytes.NewReader(raw)

	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return errors.Wrap(err, "trimesh: truncated snapshot header")
	}
	if magic != snapshotMagic {
		return fmt.Errorf("trimesh: bad snapshot magic %#x", magic)
	}
	var version uint64
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return errors.Wrap(err, "trimesh: truncated snapshot version")
	}

	var siteCount uint32
	if err := binary.Read(r, binary.LittleEndian, &siteCount); err != nil {
		return errors.Wrap(err, "trimesh: truncated site count")
	}
	sites := make([]*Site, siteCount)
	for i := range sites {
		var id uint64
		var x, y float64
		var inMeshByte byte
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return errors.Wrap(err, "trimesh: truncated site record")
		}
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return errors.Wrap(err, "trimesh: truncated site record")
		}
		if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
			return errors.Wrap(err, "trimesh: truncated site record")
		}
		if inMeshByte, err = r.ReadByte(); err != nil {
			return errors.Wrap(err, "trimesh: truncated site record")
		}
		s := &Site{id: id, x: x, y: y, witness: meshkit.NoIndex}
		_ = inMeshByte
		sites[i] = s
	}

	var triCount uint32
	if err := binary.Read(r, binary.LittleEndian, &triCount); err != nil {
		return errors.Wrap(err, "trimesh: truncated triangle count")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.arena = meshkit.NewArena[Triangle](m.cfg.RecyclerCap)
	m.root = nil
	m.siteCount = 0
	m.rootTriangle = meshkit.NoIndex
	m.pending = nil
	for _, s := range sites {
		m.linkSite(s)
		m.siteCount++
	}

	for i := uint32(0); i < triCount; i++ {
		var aOrd, bOrd, cOrd uint32
		var na, nb, nc int32
		if err := binary.Read(r, binary.LittleEndian, &aOrd); err != nil {
			return errors.Wrap(err, "trimesh: truncated triangle record")
		}
		if err := binary.Read(r, binary.LittleEndian, &bOrd); err != nil {
			return errors.Wrap(err, "trimesh: truncated triangle record")
		}
		if err := binary.Read(r, binary.LittleEndian, &cOrd); err != nil {
			return errors.Wrap(err, "trimesh: truncated triangle record")
		}
		if err := binary.Read(r, binary.LittleEndian, &na); err != nil {
			return errors.Wrap(err, "trimesh: truncated triangle record")
		}
		if err := binary.Read(r, binary.LittleEndian, &nb); err != nil {
			return errors.Wrap(err, "trimesh: truncated triangle record")
		}
		if err := binary.Read(r, binary.LittleEndian, &nc); err != nil {
			return errors.Wrap(err, "trimesh: truncated triangle record")
		}
		idx := m.arena.Alloc()
		t := m.arena.Get(idx)
		t.A, t.B, t.C = sites[aOrd], sites[bOrd], sites[cOrd]
		t.NA, t.NB, t.NC = remapNeighbor(na), remapNeighbor(nb), remapNeighbor(nc)
		if i == 0 {
			m.rootTriangle = idx
		}
		t.A.witness, t.B.witness, t.C.witness = idx, idx, idx
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
