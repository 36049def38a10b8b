package knowledge_test

import (
	. "github.com/crewmind/crewrecall/knowledge"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Search", func() {
	var store *Store

	BeforeEach(func() {
		store = NewStore(SeedItems())
	})

	It("should return nothing for a query matching no keywords", func() {
		Expect(store.Search("quit", DefaultMaxResults)).To(BeEmpty())
		Expect(store.Search("", DefaultMaxResults)).To(BeEmpty())
		Expect(store.Search("xyzzy plugh", DefaultMaxResults)).To(BeEmpty())
	})

	It("should never return more than maxResults items", func() {
		results := store.Search("stress mission sleep emergency food space", 2)
		Expect(len(results)).To(BeNumerically("<=", 2))

		results = store.Search("stress mission sleep emergency food space", 100)
		Expect(len(results)).To(BeNumerically("<=", store.Count()))
	})

	It("should rank the stress item above the mission item", func() {
		results := store.SearchScored("I'm feeling stressed about the mission", DefaultMaxResults)
		Expect(len(results)).To(BeNumerically(">=", 2))

		// "stress" keyword (2.0) + priority 5 bonus (2.5)
		Expect(results[0].Title).To(Equal("Stress Recognition in Space"))
		Expect(results[0].Score).To(Equal(4.5))

		// "mission" keyword (2.0) + priority 3 bonus (1.5)
		Expect(results[1].Title).To(Equal("Space Mission Phases"))
		Expect(results[1].Score).To(Equal(3.5))
	})

	It("should return exactly one item when maxResults is 1", func() {
		results := store.Search("I'm stressed, tired and feeling isolated", 1)
		Expect(results).To(HaveLen(1))
		Expect(results[0].Title).To(Equal("Stress Recognition in Space"))
	})

	It("should return the same results on repeated calls", func() {
		first := store.SearchScored("stress about the mission and food", DefaultMaxResults)
		second := store.SearchScored("stress about the mission and food", DefaultMaxResults)
		Expect(second).To(Equal(first))
	})

	It("should accumulate score across multiple keyword hits", func() {
		// "stress" alone
		single := store.SearchScored("stress", 10)
		Expect(single[0].Title).To(Equal("Stress Recognition in Space"))

		// "stress" and "anxiety" both hit the same item
		double := store.SearchScored("stress and anxiety", 10)
		Expect(double[0].Title).To(Equal("Stress Recognition in Space"))
		Expect(double[0].Score).To(BeNumerically(">", single[0].Score))
	})

	It("should count a keyword embedded in a longer word", func() {
		// substring containment, not token matching: "stressful" contains "stress"
		results := store.Search("what a stressful day", DefaultMaxResults)
		Expect(results).ToNot(BeEmpty())
		Expect(results[0].Title).To(Equal("Stress Recognition in Space"))
	})

	It("should match keywords case-insensitively", func() {
		results := store.Search("I am SO STRESSED right now", DefaultMaxResults)
		Expect(results).ToNot(BeEmpty())
		Expect(results[0].Title).To(Equal("Stress Recognition in Space"))
	})

	It("should break score ties by insertion order, not priority", func() {
		tieStore := NewStore(nil)
		// Same keyword weight, lower priority inserted first
		Expect(tieStore.AddItem("a", "first", "First Item", "content a", []string{"tiebreak"}, 2)).To(Succeed())
		Expect(tieStore.AddItem("b", "second", "Second Item", "content b", []string{"tiebreak", "spare"}, 2)).To(Succeed())

		results := tieStore.SearchScored("tiebreak", 10)
		Expect(results).To(HaveLen(2))
		Expect(results[0].Score).To(Equal(results[1].Score))
		Expect(results[0].Title).To(Equal("First Item"))
		Expect(results[1].Title).To(Equal("Second Item"))
	})

	It("should never surface an item on priority alone", func() {
		prioStore := NewStore(nil)
		Expect(prioStore.AddItem("a", "x", "Important But Unrelated", "content", []string{"unrelated"}, 5)).To(Succeed())

		Expect(prioStore.Search("completely different topic", 10)).To(BeEmpty())
	})

	It("should score a title hit when the query contains the title", func() {
		results := store.SearchScored("tell me about stress recognition in space please", 10)
		Expect(results).ToNot(BeEmpty())
		// "stress" keyword (2.0) + title (3.0) + priority bonus (2.5)
		Expect(results[0].Title).To(Equal("Stress Recognition in Space"))
		Expect(results[0].Score).To(Equal(7.5))
	})

	It("should return nothing when maxResults is zero or negative", func() {
		Expect(store.Search("stress", 0)).To(BeEmpty())
		Expect(store.Search("stress", -1)).To(BeEmpty())
	})

	It("should surface items added after construction", func() {
		err := store.AddItem("astronomy", "navigation", "Star Navigation Basics", "Celestial navigation uses fixed star positions.", []string{"navigation", "stars"}, 4)
		Expect(err).ToNot(HaveOccurred())

		results := store.Search("how does star navigation work", DefaultMaxResults)
		Expect(results).ToNot(BeEmpty())
		Expect(results[0].Title).To(Equal("Star Navigation Basics"))
	})
})
