package marky

// ListEntry is a sealed interface for the entries of a ListBlock.
type ListEntry interface {
	isListEntry()
}

// ListItem is the marker-bearing first entry of a source list item.
type ListItem struct {
	Type     ListItemType
	Children []Annotated
	Metadata NodeMetadata
}

func (ListItem) isListEntry() {}

// ListNode is a block nested under the preceding ListItem.
type ListNode struct {
	Node Composable
}

func (ListNode) isListEntry() {}

// ListItemType is a sealed interface describing how a list item is marked.
type ListItemType interface {
	isListItemType()
}

// Ordered marks a numbered item. Index is the 1-based position among its
// siblings, independent of the numeral written in the source.
type Ordered struct {
	Index int
}

func (Ordered) isListItemType() {}

// Unordered marks a bullet item.
type Unordered struct{}

func (Unordered) isListItemType() {}

// Task marks a checkbox item.
type Task struct {
	Completed bool
}

func (Task) isListItemType() {}

// Interface compliance checks.
var (
	_ ListEntry = ListItem{}
	_ ListEntry = ListNode{}

	_ ListItemType = Ordered{}
	_ ListItemType = Unordered{}
	_ ListItemType = Task{}
)
