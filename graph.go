package main

// SkillGraph is the candidate-centered graph payload consumed by the
// front-end visualization: present skills hang off the candidate with HAS
// edges, gaps with MISSING edges.
type SkillGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

const (
	candidateNodeID    = "Candidate"
	candidateNodeColor = "#2196F3"
	presentSkillColor  = "#4CAF50"
	missingSkillColor  = "#FF5252"
)

// BuildSkillGraph lays out the skill-gap graph for one analysis.
func BuildSkillGraph(presentSkills, missingSkills []string) *SkillGraph {
	g := &SkillGraph{
		Nodes: make([]GraphNode, 0, 1+len(presentSkills)+len(missingSkills)),
		Edges: make([]GraphEdge, 0, len(presentSkills)+len(missingSkills)),
	}

	g.Nodes = append(g.Nodes, GraphNode{
		ID:    candidateNodeID,
		Label: " YOU ",
		Size:  40,
		Color: candidateNodeColor,
	})

	for _, skill := range presentSkills {
		g.Nodes = append(g.Nodes, GraphNode{ID: skill, Label: skill, Size: 20, Color: presentSkillColor})
		g.Edges = append(g.Edges, GraphEdge{Source: candidateNodeID, Target: skill, Label: "HAS", Color: presentSkillColor})
	}

	for _, skill := range missingSkills {
		g.Nodes = append(g.Nodes, GraphNode{ID: skill, Label: skill, Size: 20, Color: missingSkillColor})
		g.Edges = append(g.Edges, GraphEdge{Source: candidateNodeID, Target: skill, Label: "MISSING", Color: missingSkillColor})
	}

	return g
}
