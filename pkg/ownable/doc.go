// Package ownable implements the single-owner authorization primitive shared by
// the Config and AvatarRegistry components.
//
// An Ownable records exactly one owner, set at construction to the deploying
// account. Only the current owner may pass OnlyOwner, transfer ownership or
// renounce it. After RenounceOwnership the owner is shared.ZeroEntityID and
// every privileged call fails with UnauthorizedError.
//
//	owner, err := ownable.New("0.0.1001")
//	if err := owner.OnlyOwner(caller); err != nil {
//		return err // ownable.UnauthorizedError
//	}
package ownable
