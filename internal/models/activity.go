package models

import "fmt"

type ActivityKind string

const (
	KindPay       ActivityKind = "pay"
	KindAddFriend ActivityKind = "add_friend"
)

// Activity is an immutable record of something a user did. Activities keep
// pointers to the users involved but do not own them.
type Activity interface {
	Kind() ActivityKind
	Actor() *User
	Target() *User
	Render() string
}

type PayActivity struct {
	actor  *User
	target *User
	amount float64
	note   string
}

func NewPayActivity(actor, target *User, amount float64, note string) *PayActivity {
	return &PayActivity{actor: actor, target: target, amount: amount, note: note}
}

func (a *PayActivity) Kind() ActivityKind { return KindPay }
func (a *PayActivity) Actor() *User       { return a.actor }
func (a *PayActivity) Target() *User      { return a.target }
func (a *PayActivity) Amount() float64    { return a.amount }
func (a *PayActivity) Note() string       { return a.note }

func (a *PayActivity) Render() string {
	return fmt.Sprintf("%s paid %s $%.2f for %s", a.actor.Username(), a.target.Username(), a.amount, a.note)
}

type AddFriendActivity struct {
	actor  *User
	target *User
}

func NewAddFriendActivity(actor, target *User) *AddFriendActivity {
	return &AddFriendActivity{actor: actor, target: target}
}

func (a *AddFriendActivity) Kind() ActivityKind { return KindAddFriend }
func (a *AddFriendActivity) Actor() *User       { return a.actor }
func (a *AddFriendActivity) Target() *User      { return a.target }

func (a *AddFriendActivity) Render() string {
	return fmt.Sprintf("%s added %s", a.actor.Username(), a.target.Username())
}
