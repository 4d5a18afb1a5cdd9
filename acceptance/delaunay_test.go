package acceptance_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhale/delaunay/tetmesh"
	"github.com/dhale/delaunay/trimesh"
)

var _ = Describe("2D four-point square", func() {
	It("produces two triangles, five edges and a four-edge hull", func() {
		m := trimesh.New(trimesh.WithDebugValidate())
		_, err := m.AddSite(0, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.AddSite(1, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.AddSite(1, 1, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.AddSite(0, 1, nil)
		Expect(err).NotTo(HaveOccurred())

		triCount := 0
		m.Triangles(func(idx int32) bool { triCount++; return true })
		Expect(triCount).To(Equal(2))

		edgeCount := 0
		m.Edges(func(a, b *trimesh.Site) bool { edgeCount++; return true })
		Expect(edgeCount).To(Equal(5))

		hullCount := 0
		m.HullFacets(func(a, b *trimesh.Site) bool { hullCount++; return true })
		Expect(hullCount).To(Equal(4))
	})
})

var _ = Describe("3D regular simplex", func() {
	It("produces one tetrahedron with four hull faces and no internal faces", func() {
		m := tetmesh.New(tetmesh.WithDebugValidate())
		_, err := m.AddSite(0, 0, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.AddSite(1, 0, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.AddSite(0, 1, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = m.AddSite(0, 0, 1, nil)
		Expect(err).NotTo(HaveOccurred())

		tetCount := 0
		m.Tets(func(idx int32) bool { tetCount++; return true })
		Expect(tetCount).To(Equal(1))

		faceCount := 0
		m.Faces(func(a, b, c *tetmesh.Site) bool { faceCount++; return true })
		Expect(faceCount).To(Equal(4))

		hullCount := 0
		m.HullFacets(func(a, b, c *tetmesh.Site) bool { hullCount++; return true })
		Expect(hullCount).To(Equal(4))
	})
})

var _ = Describe("3D internal point insertion", func() {
	It("splits the simplex into four tetrahedra with six internal faces", func() {
		m := tetmesh.New(tetmesh.WithDebugValidate())
		_, _ = m.AddSite(0, 0, 0, nil)
		_, _ = m.AddSite(1, 0, 0, nil)
		_, _ = m.AddSite(0, 1, 0, nil)
		_, _ = m.AddSite(0, 0, 1, nil)
		_, err := m.AddSite(0.25, 0.25, 0.25, nil)
		Expect(err).NotTo(HaveOccurred())

		tetCount := 0
		m.Tets(func(idx int32) bool { tetCount++; return true })
		Expect(tetCount).To(Equal(4))

		hullCount := 0
		m.HullFacets(func(a, b, c *tetmesh.Site) bool { hullCount++; return true })
		Expect(hullCount).To(Equal(4))

		internal, total := 0, 0
		m.Faces(func(a, b, c *tetmesh.Site) bool {
			total++
			return true
		})
		// Faces reports every face once, hull faces included, and HullFacets
		// reports exactly the hull faces (an undirected face has a NoIndex
		// neighbor on one side iff it's a hull face), so the difference is
		// the number of internal faces.
		internal = total - hullCount
		Expect(internal).To(Equal(6))
	})
})

var _ = Describe("3D insert-then-remove", func() {
	It("is an identity on tetrahedron count", func() {
		m := tetmesh.New(tetmesh.WithDebugValidate())
		_, _ = m.AddSite(0, 0, 0, nil)
		_, _ = m.AddSite(1, 0, 0, nil)
		_, _ = m.AddSite(0, 1, 0, nil)
		_, _ = m.AddSite(0, 0, 1, nil)
		center, err := m.AddSite(0.25, 0.25, 0.25, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.RemoveSite(center)).To(Succeed())

		tetCount := 0
		m.Tets(func(idx int32) bool { tetCount++; return true })
		Expect(tetCount).To(Equal(1))
	})
})

func cubeCorners(m *tetmesh.TetMesh) int {
	corners := [8][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	for _, c := range corners {
		if _, err := m.AddSite(c[0], c[1], c[2], nil); err != nil {
			return -1
		}
	}
	n := 0
	m.Tets(func(idx int32) bool { n++; return true })
	return n
}

var _ = Describe("Nearly-cospherical unit cube", func() {
	It("triangulates the eight corners into five or six tetrahedra deterministically", func() {
		m1 := tetmesh.New(tetmesh.WithDebugValidate())
		n1 := cubeCorners(m1)
		Expect(n1).To(Or(Equal(5), Equal(6)))

		m2 := tetmesh.New(tetmesh.WithDebugValidate())
		n2 := cubeCorners(m2)
		Expect(n2).To(Equal(n1))

		Expect(m1.Validate()).To(Succeed())
	})
})

var _ = Describe("Outer box classification", func() {
	It("classifies every tet inner or outer depending on the box", func() {
		m := tetmesh.New()
		cubeCorners(m)

		m.SetOuterBox(-0.01, -0.01, -0.01, 1.01, 1.01, 1.01)
		m.EnableOuterBox()
		allInner := true
		m.Tets(func(idx int32) bool {
			if !m.IsInnerTet(idx) {
				allInner = false
			}
			return true
		})
		Expect(allInner).To(BeTrue())

		m.SetOuterBox(0.25, 0.25, 0.25, 0.75, 0.75, 0.75)
		m.EnableOuterBox()
		allOuter := true
		m.Tets(func(idx int32) bool {
			if m.IsInnerTet(idx) {
				allOuter = false
			}
			return true
		})
		Expect(allOuter).To(BeTrue())
	})
})
