package builder

import "github.com/katalvlaran/ucsearch/core"

// RomaniaUnit is the distance unit of the Romania fixture.
const RomaniaUnit = "km"

// romaniaRoads lists every road of the map once; Romania mirrors them.
var romaniaRoads = []core.Edge{
	{From: "Arad", To: "Sibiu", Weight: 140},
	{From: "Arad", To: "Timisoara", Weight: 118},
	{From: "Arad", To: "Zerind", Weight: 75},
	{From: "Bucharest", To: "Fagaras", Weight: 211},
	{From: "Bucharest", To: "Giurgiu", Weight: 90},
	{From: "Bucharest", To: "Pitesti", Weight: 101},
	{From: "Bucharest", To: "Urziceni", Weight: 85},
	{From: "Craiova", To: "Dobreta", Weight: 120},
	{From: "Craiova", To: "Pitesti", Weight: 138},
	{From: "Craiova", To: "Rimnicu Vilcea", Weight: 146},
	{From: "Dobreta", To: "Mehadia", Weight: 75},
	{From: "Eforie", To: "Hirsova", Weight: 86},
	{From: "Fagaras", To: "Sibiu", Weight: 99},
	{From: "Hirsova", To: "Urziceni", Weight: 98},
	{From: "Iasi", To: "Neamt", Weight: 87},
	{From: "Iasi", To: "Vaslui", Weight: 92},
	{From: "Lugoj", To: "Mehadia", Weight: 70},
	{From: "Lugoj", To: "Timisoara", Weight: 111},
	{From: "Oradea", To: "Sibiu", Weight: 151},
	{From: "Oradea", To: "Zerind", Weight: 71},
	{From: "Pitesti", To: "Rimnicu Vilcea", Weight: 97},
	{From: "Rimnicu Vilcea", To: "Sibiu", Weight: 80},
	{From: "Urziceni", To: "Vaslui", Weight: 142},
}

// Romania returns a fresh copy of the Romanian road map: 20 cities, 23 roads,
// distances in km (see RomaniaUnit). Callers may mutate the result freely.
func Romania() *core.Graph {
	g := core.NewGraph()
	for _, r := range romaniaRoads {
		// static data: weights are positive and no road is a loop
		_ = g.AddEdge(r.From, r.To, r.Weight)
	}

	return g
}
